package screens

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/CamiMaidana/FamilyMed/internal/api"
	"github.com/CamiMaidana/FamilyMed/internal/domain"
	"github.com/CamiMaidana/FamilyMed/internal/session"
)

// fakeService is an in-memory stand-in for the remote FamilyMed service. It
// implements just enough of the contract for the screen controllers: stock
// decrement and next-due advancement happen here, never in the client.
type fakeService struct {
	mu       sync.Mutex
	patients []domain.Patient
	meds     map[string]*domain.Medication
	requests int // total requests seen, for "no request issued" assertions
	seq      int
}

func newFakeService() *fakeService {
	return &fakeService{meds: map[string]*domain.Medication{}}
}

func (f *fakeService) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s%d", prefix, f.seq)
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	fail := func(w http.ResponseWriter, status int, msg string) {
		writeJSON(w, status, map[string]string{"message": msg})
	}

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			fail(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		writeJSON(w, http.StatusOK, api.AuthResponse{
			AccessToken: "tok-login",
			User:        domain.User{ID: "u1", Email: req.Email},
		})
	})

	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req api.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Password) < 6 {
			fail(w, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}
		writeJSON(w, http.StatusCreated, api.AuthResponse{
			AccessToken: "tok-register",
			User:        domain.User{ID: "u2", Email: req.Email, Name: req.Name, GroupName: req.GroupName},
		})
	})

	mux.HandleFunc("GET /patients", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := f.patients
		if out == nil {
			out = []domain.Patient{}
		}
		writeJSON(w, http.StatusOK, out)
	})

	mux.HandleFunc("POST /patients", func(w http.ResponseWriter, r *http.Request) {
		var req api.CreatePatientRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.DisplayName == "fail" {
			fail(w, http.StatusBadRequest, "display name rejected")
			return
		}
		f.mu.Lock()
		p := domain.Patient{ID: f.nextID("p"), DisplayName: req.DisplayName, Timezone: req.Timezone}
		f.patients = append(f.patients, p)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, p)
	})

	mux.HandleFunc("GET /patients/{id}/dashboard", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, p := range f.patients {
			if p.ID == r.PathValue("id") {
				dash := domain.Dashboard{Patient: p, Medications: []domain.Medication{}}
				for _, m := range f.meds {
					if m.PatientID == p.ID {
						dash.Medications = append(dash.Medications, *m)
					}
				}
				writeJSON(w, http.StatusOK, dash)
				return
			}
		}
		fail(w, http.StatusNotFound, "patient not found")
	})

	mux.HandleFunc("POST /patients/{id}/contacts", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.patients {
			if f.patients[i].ID == r.PathValue("id") {
				c := domain.Contact{ID: f.nextID("c"), Email: req.Email, Enabled: true}
				f.patients[i].Contacts = append(f.patients[i].Contacts, c)
				writeJSON(w, http.StatusCreated, c)
				return
			}
		}
		fail(w, http.StatusNotFound, "patient not found")
	})

	mux.HandleFunc("DELETE /patients/{id}/contacts/{contactId}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.patients {
			if f.patients[i].ID != r.PathValue("id") {
				continue
			}
			for j, c := range f.patients[i].Contacts {
				if c.ID == r.PathValue("contactId") {
					f.patients[i].Contacts = append(f.patients[i].Contacts[:j], f.patients[i].Contacts[j+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
		}
		fail(w, http.StatusNotFound, "contact not found")
	})

	mux.HandleFunc("POST /medications", func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateMedicationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		due := time.Now().Add(time.Duration(req.IntervalHours) * time.Hour).UTC()
		if req.FirstDueAt != nil {
			due = *req.FirstDueAt
		}
		m := &domain.Medication{
			ID:            f.nextID("m"),
			PatientID:     req.PatientID,
			Name:          req.Name,
			IntervalHours: req.IntervalHours,
			DoseQty:       req.DoseQty,
			StockQty:      req.StockQty,
			NextDueAt:     &due,
			DaysRemaining: f.daysRemaining(req.StockQty, req.DoseQty, req.IntervalHours),
			Notes:         req.Notes,
		}
		f.meds[m.ID] = m
		writeJSON(w, http.StatusCreated, m)
	})

	mux.HandleFunc("POST /medications/{id}/take", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		m, ok := f.meds[r.PathValue("id")]
		if !ok {
			fail(w, http.StatusNotFound, "medication not found")
			return
		}
		now := time.Now().UTC()
		m.StockQty -= m.DoseQty
		m.LastTakenAt = &now
		next := now.Add(time.Duration(m.IntervalHours) * time.Hour)
		m.NextDueAt = &next
		m.SnoozedUntil = nil
		m.DaysRemaining = f.daysRemaining(m.StockQty, m.DoseQty, m.IntervalHours)
		writeJSON(w, http.StatusCreated, domain.DoseLog{ID: f.nextID("dl"), MedicationID: m.ID, TakenAt: now})
	})

	mux.HandleFunc("POST /medications/{id}/stock/add", func(w http.ResponseWriter, r *http.Request) {
		var req api.AddStockRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		m, ok := f.meds[r.PathValue("id")]
		if !ok {
			fail(w, http.StatusNotFound, "medication not found")
			return
		}
		m.StockQty += req.Qty
		m.DaysRemaining = f.daysRemaining(m.StockQty, m.DoseQty, m.IntervalHours)
		writeJSON(w, http.StatusOK, m)
	})

	mux.HandleFunc("POST /medications/{id}/snooze", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Minutes int `json:"minutes"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		m, ok := f.meds[r.PathValue("id")]
		if !ok {
			fail(w, http.StatusNotFound, "medication not found")
			return
		}
		until := time.Now().Add(time.Duration(req.Minutes) * time.Minute).UTC()
		m.SnoozedUntil = &until
		writeJSON(w, http.StatusOK, m)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests++
		f.mu.Unlock()
		mux.ServeHTTP(w, r)
	})
}

func (f *fakeService) daysRemaining(stock, dose float64, intervalHours int) int {
	if dose <= 0 || intervalHours <= 0 {
		return 0
	}
	dosesPerDay := 24.0 / float64(intervalHours)
	return int(stock / dose / dosesPerDay)
}

func (f *fakeService) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeService) addPatient(p domain.Patient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patients = append(f.patients, p)
}

// newTestEnv wires a controller-ready stack against the fake service.
func newTestEnv(t *testing.T) (*fakeService, *api.Client, *session.MemoryStore) {
	t.Helper()
	svc := newFakeService()
	srv := httptest.NewServer(svc.handler())
	t.Cleanup(srv.Close)
	store := session.NewMemoryStore()
	client := api.NewClient(srv.URL, 5*time.Second, store, zap.NewNop())
	return svc, client, store
}

// newTestEnvUnreachable points the client at a closed port for transport
// failure paths.
func newTestEnvUnreachable(t *testing.T) (*fakeService, *api.Client, *session.MemoryStore) {
	t.Helper()
	svc := newFakeService()
	srv := httptest.NewServer(svc.handler())
	url := srv.URL
	srv.Close()
	store := session.NewMemoryStore()
	client := api.NewClient(url, time.Second, store, zap.NewNop())
	return svc, client, store
}
