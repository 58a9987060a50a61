package handler

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"workforce-engine/internal/engine"
	"workforce-engine/internal/export"
	"workforce-engine/internal/model"
)

// Route dispatches the engine's HTTP surface.
func Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":"ok"}`)
	case "/v1/projection":
		handleProjection(ctx)
	case "/v1/projection/export":
		handleProjectionExport(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func decodeRequest(ctx *fasthttp.RequestCtx) (*model.ProjectionRequest, bool) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return nil, false
	}
	var req model.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	return &req, true
}

func handleProjection(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}

	resp := engine.Process(req)

	ctx.SetContentType("application/json")
	body, err := json.Marshal(resp)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetBody(body)
}

// handleProjectionExport runs the same calculation but answers with the
// monthly series as CSV for the spreadsheet collaborator.
func handleProjectionExport(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}

	resp := engine.Process(req)
	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, "Calculation failed, nothing to export")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteMonths(&buf, resp.CalculationResult.Months); err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to build export")
		return
	}

	ctx.SetContentType("text/csv")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="projection.csv"`)
	ctx.SetBody(buf.Bytes())
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetBody(body)
}
