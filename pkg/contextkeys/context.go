package contextkeys

type contextKey string

// DBContextKey - key of the request scoped *gorm.DB
const DBContextKey = contextKey("db")

// CourierIDKey - key of the authenticated courier id (set by the token guard)
const CourierIDKey = contextKey("courierID")
