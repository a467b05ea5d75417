// internal/app/features/ahli/crud.go
package ahli

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	ahlistore "github.com/ahlihub/ahlihub/internal/app/store/ahli"
	"github.com/ahlihub/ahlihub/internal/app/system/httpjson"
	"github.com/ahlihub/ahlihub/internal/app/system/timeouts"
	"github.com/ahlihub/ahlihub/internal/domain/models"
)

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	records, err := h.Ahli.List(ctx)
	if err != nil {
		h.Log.Error("listing ahli", zap.Error(err))
		httpjson.ServerError(w, "could not list members")
		return
	}
	httpjson.OK(w, "", httpjson.Fields{"ahli": records})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Invalid(w, "invalid member id")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	record, err := h.Ahli.GetByID(ctx, id)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.NotFound(w, "member not found")
	case err != nil:
		h.Log.Error("loading ahli", zap.Error(err))
		httpjson.ServerError(w, "could not load member")
	default:
		httpjson.OK(w, "", httpjson.Fields{"ahli": record})
	}
}

type createRequest struct {
	IDNo        string `json:"idNo"`
	FullName    string `json:"fullName"`
	ICNumber    string `json:"icNumber"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Gender      string `json:"gender"`
	Job         string `json:"job"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Invalid(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	record, err := h.Ahli.Create(ctx, models.Ahli{
		IDNo:        req.IDNo,
		FullName:    req.FullName,
		ICNumber:    req.ICNumber,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Gender:      req.Gender,
		Job:         req.Job,
	})
	switch {
	case errors.Is(err, ahlistore.ErrDuplicateIDNo):
		httpjson.Conflict(w, err.Error())
	case errors.Is(err, ahlistore.ErrMissingFields):
		httpjson.Invalid(w, err.Error())
	case err != nil:
		h.Log.Error("creating ahli", zap.Error(err))
		httpjson.ServerError(w, "could not create member")
	default:
		h.Log.Info("ahli created", zap.String("id_no", record.IDNo))
		httpjson.Created(w, "member created", httpjson.Fields{"ahli": record})
	}
}

type updateRequest struct {
	IDNo        *string `json:"idNo"`
	FullName    *string `json:"fullName"`
	ICNumber    *string `json:"icNumber"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Gender      *string `json:"gender"`
	Job         *string `json:"job"`
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Invalid(w, "invalid member id")
		return
	}
	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Invalid(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Ahli.Update(ctx, id, ahlistore.Update{
		IDNo:        req.IDNo,
		FullName:    req.FullName,
		ICNumber:    req.ICNumber,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Gender:      req.Gender,
		Job:         req.Job,
	})
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.NotFound(w, "member not found")
	case errors.Is(err, ahlistore.ErrDuplicateIDNo):
		httpjson.Conflict(w, err.Error())
	case err != nil:
		h.Log.Error("updating ahli", zap.Error(err))
		httpjson.ServerError(w, "could not update member")
	default:
		record, err := h.Ahli.GetByID(ctx, id)
		if err != nil {
			h.Log.Error("reloading ahli", zap.Error(err))
			httpjson.ServerError(w, "could not update member")
			return
		}
		httpjson.OK(w, "member updated", httpjson.Fields{"ahli": record})
	}
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Invalid(w, "invalid member id")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Ahli.Delete(ctx, id); {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.NotFound(w, "member not found")
	case err != nil:
		h.Log.Error("deleting ahli", zap.Error(err))
		httpjson.ServerError(w, "could not delete member")
	default:
		httpjson.OK(w, "member deleted", nil)
	}
}
