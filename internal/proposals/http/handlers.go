package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neighborswap/proposal-exchange/internal/proposals/codec"
	"github.com/neighborswap/proposal-exchange/internal/proposals/domain"
)

// Exchanger is the proposal exchange client as seen by the handlers
type Exchanger interface {
	Submit(ctx context.Context, s domain.Submission, creds domain.Credentials) error
	List(ctx context.Context, f domain.Filter, creds domain.Credentials) ([]domain.Proposal, error)
}

// Handler serves the proposal routes used by the mobile app
type Handler struct {
	exchanger    Exchanger
	apiKey       string
	defaultToken string
}

// New creates a handler. apiKey is sent on every store call; defaultToken is
// used when the caller sends no bearer token of its own.
func New(exchanger Exchanger, apiKey, defaultToken string) *Handler {
	return &Handler{
		exchanger:    exchanger,
		apiKey:       apiKey,
		defaultToken: defaultToken,
	}
}

// SubmitProposal forwards a pickup proposal to the store
func (h *Handler) SubmitProposal(c *gin.Context) {
	var body SubmitProposalRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	sub := domain.Submission{
		Location:  body.Location,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	}
	if body.Fee != nil {
		fee, err := domain.ParseFee(body.Fee.String())
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		sub.Fee = &fee
	}

	if err := h.exchanger.Submit(c.Request.Context(), sub, h.credentials(c)); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: messageForError(err), Kind: kindForError(err)})
		return
	}

	c.JSON(http.StatusCreated, SubmitProposalResponse{Status: "submitted"})
}

// ListProposals returns proposals, optionally for one acquirer
func (h *Handler) ListProposals(c *gin.Context) {
	var filter domain.Filter
	if acquirerID, ok := c.GetQuery("acquirer_id"); ok && strings.TrimSpace(acquirerID) != "" {
		filter.AcquirerID = &acquirerID
	}

	proposals, err := h.exchanger.List(c.Request.Context(), filter, h.credentials(c))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: messageForError(err), Kind: kindForError(err)})
		return
	}

	out := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, ToProposalResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) credentials(c *gin.Context) domain.Credentials {
	token := h.defaultToken
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		if t := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")); t != "" {
			token = t
		}
	}
	return domain.Credentials{APIKey: h.apiKey, Token: token}
}

// ToProposalResponse renders p in the store's snake_case record shape
func ToProposalResponse(p domain.Proposal) ProposalResponse {
	resp := ProposalResponse{
		ID:         p.ID,
		CreatedAt:  codec.FormatTimestamp(p.CreatedAt),
		Location:   p.Location,
		StartTime:  codec.FormatTimestamp(p.StartTime),
		EndTime:    codec.FormatTimestamp(p.EndTime),
		GiverID:    p.GiverID,
		AcquirerID: p.AcquirerID,
	}
	if p.Fee != nil {
		if n, err := codec.FeeNumber(*p.Fee); err == nil {
			resp.Fee = &n
		}
	}
	return resp
}
