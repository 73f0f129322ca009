package api

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/immutablepost/internal/entity"
)

const (
	// AckEmailsSent is the plain-text body returned once a submission is handled.
	AckEmailsSent = "emails sent"

	maxFormMemory = 1 << 20
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=handler.go -destination=../mocks/handler.go -package=mocks -mock_names=Service=MockAPIService

type Service interface {
	Submit(ctx context.Context, sub entity.Submission) ([]entity.Delivery, error)
	Settings(ctx context.Context) (entity.Settings, error)
	UpdateSettings(ctx context.Context, settings entity.Settings) (entity.Settings, error)
	Form(ctx context.Context) (entity.Form, error)
	Countries() []string
	Deliveries(ctx context.Context, invoiceNumber string) ([]entity.Delivery, error)
}

// @title Immutable Post invoices API
// @version 1.0
// @description Tax invoice notifications for Immutable Post submissions.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key
type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// @Summary Health check
// @Tags health
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	SendText(w, http.StatusOK, "OK\n")
}

// SubmissionRequest carries the fields posted by the submission form. Field
// names follow the form's inputs.
type SubmissionRequest struct {
	Company  string `json:"company"`
	FullName string `json:"fullname"`
	Country  string `json:"country"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Fee      string `json:"fee"`
	FeeNoGST string `json:"feenogst"`
	GSTCal   string `json:"gstcal"`
	Invoice  string `json:"invoicenb"`
	PostURL  string `json:"posturl"`
}

func (r SubmissionRequest) toEntity() entity.Submission {
	return entity.Submission{
		Buyer: entity.Party{
			Name:        r.Company,
			ContactName: r.FullName,
			Address:     r.Address,
			Country:     r.Country,
			Phone:       r.Phone,
			Email:       r.Email,
		},
		Fee:        r.Fee,
		FeeExclGST: r.FeeNoGST,
		GST:        r.GSTCal,
		Invoice:    r.Invoice,
		PostURL:    r.PostURL,
	}
}

func decodeSubmission(r *http.Request) (SubmissionRequest, error) {
	var req SubmissionRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(maxFormMemory)
		} else {
			err = r.ParseForm()
		}

		if err != nil {
			return req, err
		}

		req = SubmissionRequest{
			Company:  r.PostForm.Get("company"),
			FullName: r.PostForm.Get("fullname"),
			Country:  r.PostForm.Get("country"),
			Address:  r.PostForm.Get("address"),
			Phone:    r.PostForm.Get("phone"),
			Email:    r.PostForm.Get("email"),
			Fee:      r.PostForm.Get("fee"),
			FeeNoGST: r.PostForm.Get("feenogst"),
			GSTCal:   r.PostForm.Get("gstcal"),
			Invoice:  r.PostForm.Get("invoicenb"),
			PostURL:  r.PostForm.Get("posturl"),
		}

		return req, nil
	default:
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}
}

// @Summary Submit a paid post
// @Description Sends the tax invoice to the vendor, the poster and the site operator.
// @Description Transport failures are not reported to the poster.
// @Tags submissions
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param request body SubmissionRequest true "submission"
// @Success 200 {string} string "emails sent"
// @Failure 400 {object} ErrorResponse "Invalid request body or recipient"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /submissions [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodeSubmission(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	_, err = h.s.Submit(ctx, req.toEntity())
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendText(w, http.StatusOK, AckEmailsSent)
}

type FormResponse struct {
	Title         string   `json:"title"`
	WalletAddress string   `json:"walletAddress"`
	Categories    []string `json:"categories"`
}

// @Summary Submission form configuration
// @Tags form
// @Produce json
// @Success 200 {object} FormResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /form [get]
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := h.s.Form(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, FormResponse{
		Title:         f.Title,
		WalletAddress: f.WalletAddress,
		Categories:    f.Categories,
	})
}

// @Summary Selectable countries
// @Tags form
// @Produce json
// @Success 200 {array} string
// @Router /countries [get]
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, h.s.Countries())
}

type SettingsDTO struct {
	FormTitle     string `json:"formTitle"`
	WalletAddress string `json:"walletAddress"`
	CompanyName   string `json:"companyName"`
	FullName      string `json:"fullName"`
	Address       string `json:"address"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

func settingsToDTO(s entity.Settings) SettingsDTO {
	return SettingsDTO{
		FormTitle:     s.FormTitle,
		WalletAddress: s.WalletAddress,
		CompanyName:   s.Seller.Name,
		FullName:      s.Seller.ContactName,
		Address:       s.Seller.Address,
		Country:       s.Seller.Country,
		Phone:         s.Seller.Phone,
		Email:         s.Seller.Email,
	}
}

func (d SettingsDTO) toEntity() entity.Settings {
	return entity.Settings{
		FormTitle:     d.FormTitle,
		WalletAddress: d.WalletAddress,
		Seller: entity.Party{
			Name:        d.CompanyName,
			ContactName: d.FullName,
			Address:     d.Address,
			Country:     d.Country,
			Phone:       d.Phone,
			Email:       d.Email,
		},
	}
}

// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsDTO
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings [get]
// @Security ApiKeyAuth
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := h.s.Settings(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, settingsToDTO(s))
}

// @Summary Update settings
// @Description Replaces all options. The wallet address is stored in its checksum form.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body SettingsDTO true "settings"
// @Success 200 {object} SettingsDTO
// @Failure 400 {object} ErrorResponse "Invalid settings"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SettingsDTO

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	s, err := h.s.UpdateSettings(ctx, req.toEntity())
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, settingsToDTO(s))
}

type DeliveryResponse struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"lastError,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// @Summary Deliveries of an invoice
// @Tags invoices
// @Produce json
// @Param number path string true "invoice number"
// @Success 200 {array} DeliveryResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /invoices/{number}/deliveries [get]
// @Security ApiKeyAuth
func (h *Handler) Deliveries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ds, err := h.s.Deliveries(ctx, chi.URLParam(r, "number"))
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]DeliveryResponse, 0, len(ds))

	for _, d := range ds {
		resp = append(resp, DeliveryResponse{
			ID:        d.ID.String(),
			Recipient: string(d.Notice.Recipient),
			To:        d.Notice.To,
			Subject:   d.Notice.Subject,
			Status:    string(d.Status),
			Attempts:  d.Attempts,
			LastError: d.LastError,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidRecipient):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid recipient email")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid argument")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Internal server error")
	}
}
