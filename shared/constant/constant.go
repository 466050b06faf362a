package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamPage  = "page"
	RequestParamLimit = "limit"
)

// Room types. The room model and the roomtype validation tag both read these.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeFamily = "family"
	RoomTypeTwin   = "twin"
)

var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeFamily, RoomTypeTwin}

const (
	RequestParamID        = "id"
	RequestParamNumber    = "number"
	RequestParamDate      = "date"
	RequestParamType      = "type"
	RequestParamCheckin   = "checkin"
	RequestParamCheckout  = "checkout"
	RequestParamFirstName = "first_name"
	RequestParamLastName  = "last_name"
	RequestParamFormat    = "format"
	RequestParamGuestID   = "guest_id"
	RequestParamEntity    = "entity"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	DateFormat = time.DateOnly
)

const (
	MoneyFormat = "%.2f"
)

// Cache key prefixes shared by every service that can invalidate them.
const (
	CacheKeyAvailableRooms = "room:available"
	CacheKeyPaymentsOn     = "payment:on"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelStoreScopeName      = "store"
	OtelS3ScopeName         = "s3"
	OtelQueryAttributeKey   = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON  = "application/json"
	ContentTypeText  = "text/plain"
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FormatXLSX       = "xlsx"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

const (
	Asterix = "*"
	Empty   = ""
	Comma   = ","
)
