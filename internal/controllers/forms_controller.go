package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rgm-logistics/forms-api/internal/config"
	"github.com/rgm-logistics/forms-api/internal/dtos"
	"github.com/rgm-logistics/forms-api/internal/forms"
	"github.com/rgm-logistics/forms-api/internal/services"
	"github.com/rgm-logistics/forms-api/pkg/utils"
)

type FormsController struct {
	svc            services.FormService
	maxUploadBytes int64

	applicationSchema *forms.Schema
	rateQuoteSchema   *forms.Schema
}

func NewFormsController(cfg *config.Config, svc services.FormService) *FormsController {
	return &FormsController{
		svc:               svc,
		maxUploadBytes:    cfg.MaxUploadBytes,
		applicationSchema: forms.NewDriverApplicationSchema(cfg.OrgName),
		rateQuoteSchema:   forms.NewRateQuoteSchema(cfg.OrgName),
	}
}

// -----------------------------------------------------------------------------
// POST /api/apply
// -----------------------------------------------------------------------------
// The application form arrives as multipart/form-data when the submitter
// attached documents, or as plain JSON otherwise. Uploaded files are buffered
// in memory and forwarded to the owner notice as attachments.
func (c *FormsController) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var (
		sub *forms.Submission
		err error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		sub, err = c.submissionFromMultipart(r)
	} else {
		sub, err = submissionFromJSON(r)
	}
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	c.handle(w, r, c.applicationSchema, sub)
}

// -----------------------------------------------------------------------------
// POST /api/rate-quote
// -----------------------------------------------------------------------------
func (c *FormsController) SubmitRateQuote(w http.ResponseWriter, r *http.Request) {
	sub, err := submissionFromJSON(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	c.handle(w, r, c.rateQuoteSchema, sub)
}

// -----------------------------------------------------------------------------
// shared helper
// -----------------------------------------------------------------------------
func (c *FormsController) handle(w http.ResponseWriter, r *http.Request, sch *forms.Schema, sub *forms.Submission) {
	err := c.svc.Submit(r.Context(), sch, sub)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, dtos.SubmitResponse{Success: true})
		return
	}

	var rej *forms.RejectionError
	if errors.As(err, &rej) {
		status := http.StatusBadRequest
		if rej.Kind == forms.DispatchFailed {
			status = http.StatusInternalServerError
		}
		utils.RespondError(w, status, rej.Message, rej)
		return
	}

	utils.RespondError(w, http.StatusInternalServerError, "Something went wrong", err)
}

// submissionFromJSON decodes a JSON object into field values. Clients send
// whatever their form library produces, so scalar values of any type are
// coerced to strings; nested values are ignored.
func submissionFromJSON(r *http.Request) (*forms.Submission, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			values[k] = t
		case json.Number:
			values[k] = t.String()
		case bool:
			values[k] = strconv.FormatBool(t)
		}
	}
	return &forms.Submission{Values: values}, nil
}

// submissionFromMultipart parses a multipart form, buffering every uploaded
// file into memory under its original filename.
func (c *FormsController) submissionFromMultipart(r *http.Request) (*forms.Submission, error) {
	if err := r.ParseMultipartForm(c.maxUploadBytes); err != nil {
		return nil, err
	}
	form := r.MultipartForm

	values := make(map[string]string, len(form.Value))
	for k, vs := range form.Value {
		if len(vs) > 0 {
			values[k] = vs[0]
		}
	}

	var attachments []forms.Attachment
	for _, headers := range form.File {
		for _, hdr := range headers {
			f, err := hdr.Open()
			if err != nil {
				return nil, err
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, err
			}
			attachments = append(attachments, forms.Attachment{
				Filename:    hdr.Filename,
				ContentType: hdr.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	return &forms.Submission{Values: values, Attachments: attachments}, nil
}
