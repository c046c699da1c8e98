package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ceccec/zeropoint/pkg/codec"
	"github.com/ceccec/zeropoint/pkg/engine"
	"github.com/ceccec/zeropoint/pkg/generator"
	"github.com/ceccec/zeropoint/pkg/identifier"
	"github.com/ceccec/zeropoint/pkg/log"
	"github.com/ceccec/zeropoint/pkg/response"
	"github.com/ceccec/zeropoint/pkg/tag"
)

// Handler handles HTTP requests for the identifier engine.
type Handler struct {
	engine   *engine.Engine
	maxBatch int
}

// NewHandler creates a new HTTP handler.
func NewHandler(e *engine.Engine, maxBatch int) *Handler {
	return &Handler{
		engine:   e,
		maxBatch: maxBatch,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		ids := api.Group("/ids")
		{
			ids.POST("", h.Generate)
			ids.GET("/:id", h.Decode)
			ids.GET("/:id/valid", h.Validate)
			ids.GET("/:id/encodings", h.Encodings)
			ids.POST("/:id/transform", h.Transform)
			ids.POST("/:id/collapse", h.Collapse)
		}
		api.GET("/tags", h.Tags)
	}
}

// Generate mints one or more identifiers.
func (h *Handler) Generate(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	var req GenerateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			l.Warn().Err(err).Msg("failed to bind generate request")
			response.BadRequest(c, err.Error())
			return
		}
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > h.maxBatch {
		response.BadRequest(c, fmt.Sprintf("count must be between 1 and %d, got %d", h.maxBatch, count))
		return
	}

	strategy := engine.Strategy(req.Strategy)
	switch strategy {
	case "":
		strategy = engine.StrategyPattern
	case engine.StrategyName:
		hash, ok := generator.ParseHash(req.Hash)
		if !ok {
			response.BadRequest(c, fmt.Sprintf("unknown hash %q", req.Hash))
			return
		}
		strategy = engine.NameStrategy(hash)
	}
	gen, err := h.engine.Generator(strategy)
	if err != nil {
		response.UnknownStrategy(c, err.Error())
		return
	}
	_, l = log.WithStr(c.Request.Context(), log.FieldStrategy, string(strategy))

	genReq := generator.Request{
		Tags:      tag.ParseSet(req.Action, req.Component, req.State, req.VortexMode),
		Timestamp: req.Timestamp,
		Name:      req.Name,
	}
	data, err := requestData(req.Data)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	genReq.Data = data
	if req.Namespace != "" {
		ns, err := resolveNamespace(req.Namespace)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		genReq.Namespace = ns
	}

	ids := gen.GenerateBatch(genReq, count)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	l.Debug().
		Str(log.FieldIDVersion, gen.Version().Hex()).
		Int(log.FieldCount, count).
		Msg("identifiers generated")

	response.Created(c, GenerateResponse{
		Strategy: string(strategy),
		Version:  gen.Version().Hex(),
		IDs:      out,
	})
}

// Decode returns the embedded tags, timestamp and scores.
func (h *Handler) Decode(c *gin.Context) {
	a, err := h.engine.Decode(c.Param("id"))
	if err != nil {
		h.malformed(c, err)
		return
	}
	response.Success(c, toDecodeResponse(a))
}

// Validate reports whether the path parameter has the identifier shape.
func (h *Handler) Validate(c *gin.Context) {
	ok, reason := identifier.Validate(c.Param("id"))
	response.Success(c, ValidateResponse{Valid: ok, Reason: reason})
}

// Encodings renders the identifier as ULID and KSUID. The KSUID is stamped
// with the embedded timestamp when there is one.
func (h *Handler) Encodings(c *gin.Context) {
	a, err := h.engine.Decode(c.Param("id"))
	if err != nil {
		h.malformed(c, err)
		return
	}
	stamp := time.Now()
	if a.Timestamp != nil {
		stamp = *a.Timestamp
	}
	response.Success(c, codec.All(a.ID, stamp))
}

// Transform applies a vortex mode and returns the derived identifier.
func (h *Handler) Transform(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	id, err := identifier.Parse(c.Param("id"))
	if err != nil {
		h.malformed(c, err)
		return
	}

	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind transform request")
		response.BadRequest(c, err.Error())
		return
	}
	mode, ok := tag.LookupMode(req.VortexMode)
	if !ok {
		l.Debug().Str(log.FieldVortexMode, req.VortexMode).Msg("unknown vortex mode, using default")
	}

	out := h.engine.ApplyMode(id, mode)
	l.Debug().Str(log.FieldID, id.String()).Str(log.FieldVortexMode, mode.String()).Msg("identifier transformed")
	response.Created(c, IDResponse{ID: out.String()})
}

// Collapse returns the void identifier. The path parameter is not checked.
func (h *Handler) Collapse(c *gin.Context) {
	response.Success(c, IDResponse{ID: h.engine.CollapseToVoid(identifier.ID{}).String()})
}

// Tags dumps the registry.
func (h *Handler) Tags(c *gin.Context) {
	resp := TagsResponse{Namespaces: identifier.NamespaceNames()}
	for _, a := range tag.Actions() {
		resp.Actions = append(resp.Actions, TagEntry{a.String(), a.Code()})
	}
	for _, x := range tag.Components() {
		resp.Components = append(resp.Components, TagEntry{x.String(), x.Code()})
	}
	for _, s := range tag.States() {
		resp.States = append(resp.States, TagEntry{s.String(), s.Code()})
	}
	for _, m := range tag.Modes() {
		resp.VortexModes = append(resp.VortexModes, TagEntry{m.String(), m.Code()})
	}
	for _, s := range h.engine.Strategies() {
		resp.Strategies = append(resp.Strategies, string(s))
	}
	response.Success(c, resp)
}

func (h *Handler) malformed(c *gin.Context, err error) {
	if errors.Is(err, identifier.ErrMalformedIdentifier) {
		response.MalformedIdentifier(c, err.Error())
		return
	}
	l := log.Ctx(c.Request.Context())
	l.Error().Err(err).Msg("failed to decode identifier")
	response.InternalError(c, "failed to decode identifier")
}

// resolveNamespace accepts a predefined namespace name or an identifier
// literal. Unknown names are an error here rather than a fallback to the
// default namespace, which only applies when no namespace is given.
func resolveNamespace(s string) (identifier.ID, error) {
	if ns, ok := identifier.NamespaceByName(s); ok {
		return ns, nil
	}
	ns, err := identifier.Parse(s)
	if err != nil {
		return identifier.ID{}, fmt.Errorf("unknown namespace %q: %w", s, err)
	}
	return ns, nil
}
