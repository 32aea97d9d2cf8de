package interfaces

// Logger is the structured logger used across the core services.
//
//	logger.Info("Paginated article", map[string]interface{}{
//		"article_id": id,
//		"pages":      len(pages),
//	})
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}