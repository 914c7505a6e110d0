package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// User-related messages
	UserCreatedSuccess   = "user created successfully"
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Menu messages
	MenuListSuccess        = "menu fetched successfully"
	MenuItemCreatedSuccess = "menu item created successfully"
	MenuItemUpdatedSuccess = "menu item updated successfully"
	MenuItemDeletedSuccess = "menu item deleted successfully"

	// Slot / working day messages
	SlotListSuccess      = "delivery slots fetched successfully"
	WorkingDayGetSuccess = "working day fetched successfully"

	// Order messages
	OrderPlacedSuccess        = "order placed successfully"
	OrderListSuccess          = "orders fetched successfully"
	OrderGetSuccess           = "order fetched successfully"
	OrderStatusUpdatedSuccess = "order status updated successfully"
	OrderCancelledSuccess     = "order cancelled successfully"

	// Admin dashboard messages
	FeedGetSuccess    = "live feed fetched successfully"
	SummaryGetSuccess = "summary fetched successfully"
)
