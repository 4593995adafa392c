package mail

import (
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/blogs/pkg/httpx"
	"github.com/ghuser/blogs/pkg/logger"
)

// previewCSP lets the preview page use its inline stylesheet while still
// blocking scripts and remote content.
const previewCSP = "default-src 'none'; style-src 'unsafe-inline'"

var previewPage = template.Must(template.New("message").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Subject}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
dl.headers { color: #555; border-bottom: 1px solid #ddd; padding-bottom: 1rem; }
{{.CSS}}
</style>
</head>
<body>
<dl class="headers">
<dt>From</dt><dd>{{.From}}</dd>
<dt>To</dt><dd>{{.To}}</dd>
<dt>Subject</dt><dd>{{.Subject}}</dd>
<dt>Sent</dt><dd>{{.SentAt.Format "2006-01-02 15:04:05 MST"}}</dd>
</dl>
{{.Body}}
</body>
</html>
`))

// MessageSummary is one entry of the letter-opener index.
type MessageSummary struct {
	ID      string    `json:"id"      example:"3f1c2a9e-4d6b-4b8e-9a51-2f0c6d7e8a90"`
	To      string    `json:"to"      example:"ada@example.com"`
	Subject string    `json:"subject" example:"Welcome to Blogs"`
	SentAt  time.Time `json:"sent_at" example:"2024-01-15T10:30:00Z"`
} // @name MessageSummary

// PreviewRoutes mounts the letter-opener preview on r. Call it only when the
// preview is enabled; the routes do not exist otherwise.
func PreviewRoutes(r chi.Router, outbox *Outbox, log logger.Logger) {
	h := &previewHandler{outbox: outbox, log: log}
	r.Route("/letter_opener", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{id}", h.show)
	})
}

type previewHandler struct {
	outbox *Outbox
	log    logger.Logger
}

// list returns the captured messages, newest first.
//
//	@Summary		List captured mails
//	@Description	Development only. Mounted when MAIL_PREVIEW_ENABLED=true.
//	@Tags			letter_opener
//	@Produce		json
//	@Success		200	{array}	MessageSummary
//	@Router			/letter_opener [get]
func (h *previewHandler) list(w http.ResponseWriter, _ *http.Request) {
	msgs := h.outbox.List()
	out := make([]MessageSummary, len(msgs))
	for i, m := range msgs {
		out[i] = MessageSummary{ID: m.ID, To: m.To, Subject: m.Subject, SentAt: m.SentAt}
	}
	httpx.JSON(w, http.StatusOK, out)
}

// show renders one captured message as HTML.
//
//	@Summary		Preview a captured mail
//	@Tags			letter_opener
//	@Produce		html
//	@Param			id	path	string	true	"Message ID"
//	@Success		200
//	@Failure		404	{object}	map[string]string
//	@Router			/letter_opener/{id} [get]
func (h *previewHandler) show(w http.ResponseWriter, r *http.Request) {
	msg, ok := h.outbox.Get(chi.URLParam(r, "id"))
	if !ok {
		httpx.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", previewCSP)
	if err := previewPage.Execute(w, struct {
		Message
		CSS  template.CSS
		Body template.HTML
	}{msg, CodeCSS(), ToHTML(msg.Markdown)}); err != nil {
		h.log.ErrorContext(r.Context(), "render mail preview", "message_id", msg.ID, "error", err)
	}
}
