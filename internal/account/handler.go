package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/wssapp/account-service/internal/account/entity"
	"github.com/wssapp/account-service/internal/config"
)

// Handler exposes HTTP endpoints for account operations.
type Handler struct {
	svc       *Service
	dict      config.Dictionary
	serverURL string
	logger    *zap.SugaredLogger
}

func NewHandler(svc *Service, dict config.Dictionary, serverURL string, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, dict: dict, serverURL: serverURL, logger: logger}
}

// StatusResponse is the {message, status} envelope shared by most endpoints.
type StatusResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// CreateAccountRequest is the registration payload.
type CreateAccountRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"displayname"`
	Password    string `json:"password"`
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid create-account payload", "err", err)
		h.writeStatus(w, http.StatusBadRequest, h.dict.Error.MissingFields)
		return
	}

	_, err := h.svc.Register(r.Context(), req.Email, req.Username, req.DisplayName, req.Password)
	if err != nil {
		var missing *MissingFieldError
		var rejected *UsernameRejectedError
		switch {
		case errors.As(err, &missing):
			h.writeStatus(w, http.StatusBadRequest, h.dict.MissingFields+" "+missing.Field)
		case errors.As(err, &rejected):
			h.writeStatus(w, http.StatusBadRequest, h.usernameMessage(rejected.Reason))
		case errors.Is(err, ErrDuplicateEmail):
			h.writeStatus(w, http.StatusBadRequest, h.dict.IllegalEmail)
		default:
			h.logger.Errorw("registration failed", "err", err)
			h.writeStatus(w, http.StatusInternalServerError, h.dict.Error.Internal)
		}
		return
	}

	h.writeStatus(w, http.StatusOK, h.dict.AccountCreated)
}

// LoginResponse carries the identity claim on success.
type LoginResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    struct {
		UID string `json:"uid"`
	} `json:"data"`
}

// Login reads email and password from request headers (a GET with a body is
// not portable) and responds with the public id on success.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("email")
	password := r.Header.Get("password")

	publicID, err := h.svc.Authenticate(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, ErrLoginFieldsMissing):
			h.writeStatus(w, http.StatusBadRequest, h.dict.Error.Login.MissingFields)
		case errors.Is(err, ErrInvalidCredentials):
			h.writeStatus(w, http.StatusBadRequest, h.dict.Error.Login.InvalidCredentials)
		default:
			h.logger.Errorw("login failed", "err", err)
			h.writeStatus(w, http.StatusInternalServerError, h.dict.Error.Internal)
		}
		return
	}

	resp := LoginResponse{Message: h.dict.Status.Success, Status: http.StatusOK}
	resp.Data.UID = publicID
	h.writeJSON(w, http.StatusOK, resp)
}

// profileDataResponse is the safe view plus the response status.
type profileDataResponse struct {
	entity.SafeView
	Status int `json:"status"`
}

// ProfileData returns the safe view for the account keyed by the suid
// request header.
func (h *Handler) ProfileData(w http.ResponseWriter, r *http.Request) {
	suid := r.Header.Get("suid")
	if suid == "" {
		h.writeStatus(w, http.StatusBadRequest, h.dict.Error.MissingFields)
		return
	}

	acc, err := h.svc.GetBySecureID(r.Context(), suid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.writeStatus(w, http.StatusNotFound, h.dict.Error.User.NotFound)
			return
		}
		h.logger.Errorw("profile lookup failed", "err", err)
		h.writeStatus(w, http.StatusInternalServerError, h.dict.Error.Internal)
		return
	}

	h.writeJSON(w, http.StatusOK, profileDataResponse{
		SafeView: acc.Safe(h.serverURL),
		Status:   http.StatusOK,
	})
}

// List returns the safe view of every account.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.logger.Errorw("account listing failed", "err", err)
		h.writeStatus(w, http.StatusInternalServerError, h.dict.Error.Internal)
		return
	}

	views := make([]entity.SafeView, 0, len(accounts))
	for _, acc := range accounts {
		views = append(views, acc.Safe(h.serverURL))
	}
	h.writeJSON(w, http.StatusOK, views)
}

// DeleteAll removes every account record (administrative).
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		h.logger.Errorw("bulk delete failed", "err", err)
		h.writeStatus(w, http.StatusInternalServerError, h.dict.Status.Failure)
		return
	}
	h.logger.Infow("accounts deleted", "count", count)
	h.writeStatus(w, http.StatusOK, h.dict.Status.Success)
}

func (h *Handler) usernameMessage(reason UsernameReason) string {
	switch reason {
	case UsernameTooLong:
		return h.dict.Error.Username.TooLong
	case UsernameTooShort:
		return h.dict.Error.Username.TooShort
	case UsernameIllegal:
		return h.dict.Error.Username.Illegal
	case UsernameReserved:
		return h.dict.Error.Username.Reserved
	case UsernameOccupied:
		return h.dict.Error.Username.Occupied
	}
	return h.dict.Error.Internal
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, StatusResponse{Message: message, Status: status})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
