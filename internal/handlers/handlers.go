// Package handlers содержит HTTP-обработчики сервиса коротких ссылок.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/apperrors"
	"github.com/Totarae/shortlink/internal/middleware"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/respond"
	"github.com/Totarae/shortlink/internal/service"
	"github.com/Totarae/shortlink/internal/validation"
)

// Greeting ответ корневого маршрута.
const Greeting = "Eh, What's up doc?"

var digitsRe = regexp.MustCompile(`^\d+$`)

type Handler struct {
	URLs     *service.ShortenerService
	Users    *service.UserService
	Validate *validation.Validator
	BaseURL  string
	Logger   *zap.Logger
}

func NewHandler(urls *service.ShortenerService, users *service.UserService, v *validation.Validator, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		URLs:     urls,
		Users:    users,
		Validate: v,
		BaseURL:  baseURL,
		Logger:   logger,
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	respond.Error(w, h.Logger.With(zap.String("method", r.Method), zap.String("uri", r.RequestURI)), err)
}

// decode читает JSON-тело запроса и проверяет его.
func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.New(apperrors.KindValidation, "Request body is empty")
		}
		return apperrors.New(apperrors.KindValidation, "Invalid JSON body")
	}
	return h.Validate.Struct(dst)
}

// currentUser пользователь, найденный по API-ключу в цепочке проверок.
func currentUser(r *http.Request) (*model.User, error) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return nil, apperrors.Unauthenticated("Missing API Key")
	}
	return user, nil
}

// Root отвечает приветствием.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, Greeting)
}

// Ping проверяет доступность хранилища
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.URLs.Ping(r.Context()); err != nil {
		h.fail(w, r, apperrors.Internal(err))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "OK")
}

// CreateUser регистрирует пользователя и возвращает его API-ключ.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.Users.Signup(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, model.SignupResponse{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		APIKey: user.APIKey,
	})
}

// GetUsers ищет пользователей по email. Ключи в ответ не попадают.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	q := model.UsersQuery{Email: r.URL.Query().Get("email")}
	if err := h.Validate.Struct(q); err != nil {
		h.fail(w, r, err)
		return
	}

	users, err := h.Users.FindByEmail(r.Context(), q.Email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

// ListURLs ссылки текущего пользователя.
func (h *Handler) ListURLs(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	urls, err := h.URLs.List(r.Context(), user)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, urls)
}

// Shorten создаёт короткую ссылку.
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req model.ShortenRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.URLs.Create(r.Context(), user, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, model.NewShortenResponse(u))
}

// ShortenBatch создаёт несколько ссылок. Доступно тарифу enterprise.
func (h *Handler) ShortenBatch(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req model.BatchShortenRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	urls, err := h.URLs.CreateBatch(r.Context(), user, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := model.BatchShortenResponse{URLs: make([]model.ShortenResponse, 0, len(urls))}
	for _, u := range urls {
		resp.URLs = append(resp.URLs, model.NewShortenResponse(u))
	}
	respond.JSON(w, http.StatusCreated, resp)
}

// Redirect переадресует на исходный адрес по коду.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := model.RedirectQuery{Code: query.Get("code")}
	if query.Has("pw") {
		pw := query.Get("pw")
		q.Password = &pw
	}
	if err := h.Validate.Struct(q); err != nil {
		h.fail(w, r, err)
		return
	}

	location, err := h.URLs.Redirect(r.Context(), q.Code, q.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, location, http.StatusFound)
}

// DeleteURL удаляет ссылку владельца по коду.
func (h *Handler) DeleteURL(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	code := chi.URLParam(r, "code")
	if code == "" {
		h.fail(w, r, validation.Field("code", "is required"))
		return
	}

	msg, err := h.URLs.Delete(r.Context(), user, code)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": msg})
}

// UpdateURL частично обновляет ссылку по числовому id.
func (h *Handler) UpdateURL(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	rawID := chi.URLParam(r, "id")
	if !digitsRe.MatchString(rawID) {
		h.fail(w, r, validation.Field("id", "must be a positive integer"))
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.fail(w, r, validation.Field("id", "is out of range"))
		return
	}

	var req model.UpdateURLRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.URLs.Update(r.Context(), user, id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, model.NewShortenResponse(u))
}
