package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// Identifier engine
	FieldID         = "id"
	FieldIDVersion  = "id_version"
	FieldStrategy   = "strategy"
	FieldCount      = "count"
	FieldVortexMode = "vortex_mode"
	FieldLayout     = "pattern_layout"
)
