package constvars

const (
	MongoCollectionUsers     = "users"
	MongoCollectionMenuItems = "menu_items"
	MongoCollectionOrders    = "orders"
)
