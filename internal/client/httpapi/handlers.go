package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/devprofiler/internal/client/controller"
	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/gorilla/mux"
)

type accountView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type sessionResponse struct {
	controller.Result
	Screen  string       `json:"screen"`
	Account *accountView `json:"account,omitempty"`
}

type devicesResponse struct {
	controller.Result
	Count   int             `json:"count"`
	Devices []models.Device `json:"devices"`
}

type deviceResponse struct {
	controller.Result
	Device *models.Device `json:"device,omitempty"`
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var badRequest = controller.Result{Kind: controller.KindValidation, Message: "Invalid request body"}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	st := s.ctl.State()
	resp := sessionResponse{
		Result: controller.Result{Kind: controller.KindOK},
		Screen: st.Screen.String(),
	}
	if st.Account != nil {
		resp.Account = &accountView{ID: st.Account.ID, Email: st.Account.Email, CreatedAt: st.Account.CreatedAt}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResult(w, badRequest)
		return
	}
	res := s.ctl.Register(r.Context(), req.Email, req.Password, req.ConfirmPassword)
	writeJSON(w, statusFor(res, http.StatusCreated), res)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResult(w, badRequest)
		return
	}
	writeResult(w, s.ctl.Login(r.Context(), req.Email, req.Password))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.ctl.Logout(r.Context()))
}

func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	list, res := s.ctl.Devices(r.Context())
	if !res.OK() {
		writeResult(w, res)
		return
	}
	writeJSON(w, http.StatusOK, devicesResponse{Result: res, Count: len(list), Devices: list})
}

func (s *Server) handleAddDevice(w http.ResponseWriter, r *http.Request) {
	var f models.DeviceFields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeResult(w, badRequest)
		return
	}
	s.ctl.CancelEdit()
	res := s.ctl.SubmitDevice(r.Context(), f, "")
	writeJSON(w, statusFor(res, http.StatusCreated), res)
}

// handleGetDevice opens the edit form: the device is staged for editing.
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	d, res := s.ctl.BeginEdit(r.Context(), mux.Vars(r)["id"])
	writeJSON(w, statusFor(res, http.StatusOK), deviceResponse{Result: res, Device: d})
}

func (s *Server) handleUpdateDevice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var f models.DeviceFields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeResult(w, badRequest)
		return
	}

	if _, res := s.ctl.BeginEdit(r.Context(), id); !res.OK() {
		writeResult(w, res)
		return
	}
	res := s.ctl.SubmitDevice(r.Context(), f, id)
	if !res.OK() {
		s.ctl.CancelEdit()
	}
	writeResult(w, res)
}

func (s *Server) handleRequestDelete(w http.ResponseWriter, r *http.Request) {
	d, res := s.ctl.RequestDelete(r.Context(), mux.Vars(r)["id"])
	writeJSON(w, statusFor(res, http.StatusOK), deviceResponse{Result: res, Device: d})
}

func (s *Server) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.ctl.ConfirmDelete(r.Context()))
}

func (s *Server) handleCancelDelete(w http.ResponseWriter, r *http.Request) {
	s.ctl.CancelDelete()
	writeResult(w, controller.Result{Kind: controller.KindOK})
}

// statusFor maps a result kind onto an HTTP status; okStatus is used for
// successful results.
func statusFor(res controller.Result, okStatus int) int {
	switch res.Kind {
	case controller.KindOK:
		return okStatus
	case controller.KindValidation:
		return http.StatusBadRequest
	case controller.KindAuth:
		return http.StatusUnauthorized
	case controller.KindNotFound:
		return http.StatusNotFound
	case controller.KindConflict, controller.KindState:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeResult(w http.ResponseWriter, res controller.Result) {
	writeJSON(w, statusFor(res, http.StatusOK), res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
