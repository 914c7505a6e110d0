package constvars

// Client-facing messages. Keep these free of internals; the paired ErrDev*
// messages carry the detail for logs.
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request, please check your input"
	ErrClientServerLongRespond             = "server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already registered"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientInvalidDateInput              = "invalid date, expected format YYYY-MM-DD"
	ErrClientInvalidSlotTime               = "invalid delivery slot time"
	ErrClientSlotNoLongerAvailable         = "this delivery slot is no longer available, please pick another one"
	ErrClientSlotOutsideWindow             = "delivery slots are only available between 11 PM and 5 AM"
	ErrClientUnknownHostelBlock            = "unknown hostel block, delivery is limited to blocks A, B, C and D"
	ErrClientMenuItemNotFound              = "one or more menu items in your order were not found"
	ErrClientMenuItemUnavailable           = "one or more menu items in your order are currently unavailable"
	ErrClientOrderNotFound                 = "order not found"
	ErrClientOrderEmpty                    = "order must contain at least one item"
	ErrClientInvalidStatusTransition       = "this order cannot be moved to the requested status"
	ErrClientInvalidImageFormat            = "invalid image, only jpeg, png and webp are supported"
	ErrClientTooManyOrders                 = "too many orders placed, please wait a moment and try again"
)

// Developer messages for logging.
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON payload"
	ErrDevCannotParseDate           = "cannot parse calendar date input"
	ErrDevCannotParseTime           = "cannot parse RFC3339 timestamp"
	ErrDevCannotMarshalJSON         = "cannot marshal value to JSON"
	ErrDevServerDeadlineExceeded    = "request deadline exceeded"
	ErrDevMissingSessionData        = "session data missing from context"
	ErrDevInvalidCredentials        = "invalid credentials supplied"
	ErrDevEmailAlreadyExists        = "email already exists in users collection"
	ErrDevPasswordsDoNotMatch       = "password and retype password do not match"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevUserNotExists             = "user does not exist"
	ErrDevAuthGenerateToken         = "failed to generate JWT token"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthTokenInvalid          = "JWT token invalid"
	ErrDevAuthTokenMissing          = "authorization header missing"
	ErrDevAuthTokenInvalidOrExpired = "JWT token invalid or session expired"
	ErrDevRoleNotAllowed            = "session role is not allowed for this endpoint"

	ErrDevSlotNoLongerAvailable   = "slot failed bookability re-check at submit time"
	ErrDevSlotOutsideWindow       = "slot time does not fall on a slot of the operative delivery window"
	ErrDevUnknownHostelBlock      = "hostel block is not one of the recognized blocks"
	ErrDevMenuItemNotFound        = "menu item id not found"
	ErrDevMenuItemUnavailable     = "menu item is flagged unavailable"
	ErrDevOrderNotFound           = "order document not found"
	ErrDevOrderEmpty              = "order has no items"
	ErrDevInvalidStatusTransition = "order status transition not allowed"
	ErrDevOrderRateExceeded       = "per-student order placement budget exceeded"
	ErrDevImageValidationFailed   = "image validation failed"

	ErrDevDBFailedToFindDocument     = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongodb failed to delete document"
	ErrDevDBFailedToIterateDocuments = "mongodb failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid mongodb ObjectID"

	ErrDevRedisSet          = "redis failed to set key"
	ErrDevRedisGet          = "redis failed to get key"
	ErrDevRedisDelete       = "redis failed to delete key"
	ErrDevRedisStoreSession = "redis failed to store session"

	ErrDevRabbitMQPublish = "rabbitmq failed to publish message"
	ErrDevMinioUpload     = "minio failed to upload object"
)
