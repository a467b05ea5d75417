package indexes_test

import (
	"testing"

	"github.com/ahlihub/ahlihub/internal/app/system/indexes"
	"github.com/ahlihub/ahlihub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func listIndexNames(t *testing.T, coll *mongo.Collection) map[string]bool {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesExpectedIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expected := map[string][]string{
		"users":    {"uniq_users_username", "uniq_users_email", "idx_users_created"},
		"ahli":     {"uniq_ahli_idno", "idx_ahli_fullname"},
		"meetings": {"idx_meetings_active_datetime", "idx_meetings_createdby"},
	}
	for coll, want := range expected {
		names := listIndexNames(t, db.Collection(coll))
		for _, name := range want {
			if !names[name] {
				t.Errorf("expected index %q on %s collection", name, coll)
			}
		}
	}
}

func TestEnsureAll_UniqueIndexEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	if _, err := db.Collection("ahli").InsertOne(ctx, bson.M{"id_no": "PAK-0001", "full_name": "Ali"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := db.Collection("ahli").InsertOne(ctx, bson.M{"id_no": "PAK-0001", "full_name": "Abu"}); err == nil {
		t.Error("expected duplicate key error for unique index on ahli.id_no")
	}
}
