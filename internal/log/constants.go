package log

const (
	KeyAppName      = "app"
	KeyProcess      = "process"
	KeyTag          = "tag"
	KeyConfig       = "config"
	KeyStorageKey   = "storageKey"
	KeyItemID       = "itemId"
	KeyItemTitle    = "itemTitle"
	KeyQuantity     = "quantity"
	KeyCartCount    = "cartCount"
	KeyCartTotal    = "cartTotal"
	KeyEntityKind   = "entityKind"
	KeyEntityID     = "entityId"
	KeyState        = "state"
	KeyUsername     = "username"
	KeyNotification = "notification"
)
