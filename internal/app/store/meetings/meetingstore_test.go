package meetingstore_test

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	meetingstore "github.com/ahlihub/ahlihub/internal/app/store/meetings"
	"github.com/ahlihub/ahlihub/internal/app/system/indexes"
	"github.com/ahlihub/ahlihub/internal/domain/enums"
	"github.com/ahlihub/ahlihub/internal/domain/models"
	"github.com/ahlihub/ahlihub/internal/testutil"
)

func setup(t *testing.T) *meetingstore.Store {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	return meetingstore.New(db)
}

func createMeeting(t *testing.T, store *meetingstore.Store, title string, at time.Time) *models.Meeting {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m, err := store.Create(ctx, models.Meeting{
		Title:    title,
		Datetime: at,
		Place:    "Dewan Komuniti",
		Agenda:   []string{"Ucapan", "  ", "Hal lain"},
	}, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return m
}

func TestCreate_Defaults(t *testing.T) {
	store := setup(t)
	m := createMeeting(t, store, "Mesyuarat Agung", time.Now().Add(48*time.Hour))

	if m.Status != enums.MeetingUpcoming {
		t.Errorf("status = %q, want %q", m.Status, enums.MeetingUpcoming)
	}
	if !m.IsActive {
		t.Error("new meetings should be active")
	}
	if len(m.Agenda) != 2 {
		t.Errorf("agenda = %v, want blank lines dropped", m.Agenda)
	}
	if len(m.Attendees) != 0 {
		t.Errorf("attendees should start empty, got %v", m.Attendees)
	}
}

func TestCreate_RequiredFields(t *testing.T) {
	store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Meeting{Title: "X", Place: "Y"}, primitive.NewObjectID())
	if err == nil {
		t.Error("expected error for zero datetime")
	}
	_, err = store.Create(ctx, models.Meeting{Title: "X", Datetime: time.Now()}, primitive.NewObjectID())
	if err == nil {
		t.Error("expected error for missing place")
	}
}

func TestUpcoming_SkipsPastAndLimitsToFive(t *testing.T) {
	store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	createMeeting(t, store, "Lepas", time.Now().Add(-24*time.Hour))
	for i := 0; i < 7; i++ {
		createMeeting(t, store, "Akan datang", time.Now().Add(time.Duration(i+1)*24*time.Hour))
	}

	upcoming, err := store.Upcoming(ctx)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(upcoming) != 5 {
		t.Fatalf("len = %d, want 5", len(upcoming))
	}
	for i := 1; i < len(upcoming); i++ {
		if upcoming[i].Datetime.Before(upcoming[i-1].Datetime) {
			t.Fatal("upcoming not sorted soonest first")
		}
	}
	for _, m := range upcoming {
		if m.Title == "Lepas" {
			t.Error("past meeting included in upcoming")
		}
	}
}

func TestSoftDelete_HidesMeeting(t *testing.T) {
	store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := createMeeting(t, store, "Mesyuarat", time.Now().Add(24*time.Hour))

	if err := store.SoftDelete(ctx, m.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if _, err := store.GetByID(ctx, m.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("cancelled meeting still visible: %v", err)
	}
	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("cancelled meeting still listed: %v", list)
	}
	// Second delete finds nothing active.
	if err := store.SoftDelete(ctx, m.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments on repeat delete, got %v", err)
	}
}

func TestSetRSVP_OneEntryPerUser(t *testing.T) {
	store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := createMeeting(t, store, "Mesyuarat", time.Now().Add(24*time.Hour))
	userID := primitive.NewObjectID()

	if err := store.SetRSVP(ctx, m.ID, userID, enums.RSVPAttending); err != nil {
		t.Fatalf("SetRSVP: %v", err)
	}
	if err := store.SetRSVP(ctx, m.ID, userID, enums.RSVPNotAttending); err != nil {
		t.Fatalf("second SetRSVP: %v", err)
	}

	got, err := store.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Attendees) != 1 {
		t.Fatalf("attendees = %d entries, want 1", len(got.Attendees))
	}
	if got.Attendees[0].Status != enums.RSVPNotAttending {
		t.Errorf("status = %q, want %q", got.Attendees[0].Status, enums.RSVPNotAttending)
	}
}

func TestSetRSVP_RejectsPending(t *testing.T) {
	store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := createMeeting(t, store, "Mesyuarat", time.Now().Add(24*time.Hour))
	if err := store.SetRSVP(ctx, m.ID, primitive.NewObjectID(), enums.RSVPPending); err == nil {
		t.Error("pending must not be submittable")
	}
}

func TestUpdate_Partial(t *testing.T) {
	store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := createMeeting(t, store, "Mesyuarat", time.Now().Add(24*time.Hour))

	place := "Balai Raya"
	if err := store.Update(ctx, m.ID, meetingstore.Update{Place: &place}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Place != "Balai Raya" {
		t.Errorf("place = %q", got.Place)
	}
	if got.Title != "Mesyuarat" {
		t.Error("untouched title changed")
	}
}

func TestUpdate_DropsUnknownStatus(t *testing.T) {
	store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := createMeeting(t, store, "Mesyuarat", time.Now().Add(24*time.Hour))

	bad := "postponed"
	if err := store.Update(ctx, m.ID, meetingstore.Update{Status: &bad}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != enums.MeetingUpcoming {
		t.Errorf("status = %q, unknown value must be dropped", got.Status)
	}
}
