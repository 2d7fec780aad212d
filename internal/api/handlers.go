package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lightbnb/internal/export"
	"lightbnb/internal/models"
)

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.NewUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.svc.Users.CreateUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (s *HTTPServer) handleUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := s.svc.Users.GetUserByEmail(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *HTTPServer) handleUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.svc.Users.GetUserByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *HTTPServer) handleGuestReservations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reservations, err := s.svc.Reservations.ListForGuest(r.Context(), id, int(limit))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": reservations})
}

type reservationRequest struct {
	GuestID    int64  `json:"guest_id"`
	PropertyID int64  `json:"property_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (s *HTTPServer) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	start, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date; expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse(models.DateLayout, req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date; expected YYYY-MM-DD")
		return
	}

	reservation := &models.Reservation{
		GuestID:    req.GuestID,
		PropertyID: req.PropertyID,
		StartDate:  start,
		EndDate:    end,
	}
	if err := s.svc.Reservations.CreateReservation(r.Context(), reservation); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (s *HTTPServer) handleSearchProperties(w http.ResponseWriter, r *http.Request) {
	opts, limit, err := searchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listings, err := s.svc.Properties.SearchProperties(r.Context(), opts, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"properties": listings})
}

func (s *HTTPServer) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var property models.Property
	if err := decodeJSON(r, &property); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.svc.Properties.CreateProperty(r.Context(), &property); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (s *HTTPServer) handleExportProperties(w http.ResponseWriter, r *http.Request) {
	opts, limit, err := searchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listings, err := s.svc.Properties.SearchProperties(r.Context(), opts, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.PropertiesWorkbook(&buf, listings); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="properties.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// queryInt parses an optional integer parameter. Absent means 0.
func queryInt(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func searchParams(r *http.Request) (models.PropertySearchOptions, int, error) {
	var opts models.PropertySearchOptions
	var err error

	if opts.OwnerID, err = queryInt(r, "owner_id"); err != nil {
		return opts, 0, err
	}
	if opts.MinimumPricePerNight, err = queryInt(r, "minimum_price_per_night"); err != nil {
		return opts, 0, err
	}
	if opts.MaximumPricePerNight, err = queryInt(r, "maximum_price_per_night"); err != nil {
		return opts, 0, err
	}
	opts.City = strings.TrimSpace(r.URL.Query().Get("city"))

	if raw := strings.TrimSpace(r.URL.Query().Get("minimum_rating")); raw != "" {
		opts.MinimumRating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return opts, 0, fmt.Errorf("invalid minimum_rating %q", raw)
		}
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		return opts, 0, err
	}
	return opts, int(limit), nil
}
