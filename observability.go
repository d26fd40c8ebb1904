package dnstheory

type LogRecord struct {
	Level     string
	Event     string
	RequestID string
	Method    string
	Path      string
	Status    int
	ErrorCode string
}

type MetricRecord struct {
	Name  string
	Value int
	Tags  map[string]string
}

// ObservabilityHooks receive one record per served request. Hooks must not
// block; the serve path calls them synchronously.
type ObservabilityHooks struct {
	Log    func(LogRecord)
	Metric func(MetricRecord)
}

func (a *App) recordObservability(method, path, requestID string, status int, errorCode string) {
	if a == nil {
		return
	}

	level := "info"
	if status >= 500 {
		level = "error"
	} else if status >= 400 {
		level = "warn"
	}

	if a.obs.Log != nil {
		a.obs.Log(LogRecord{
			Level:     level,
			Event:     "request.completed",
			RequestID: requestID,
			Method:    method,
			Path:      path,
			Status:    status,
			ErrorCode: errorCode,
		})
	}

	if a.obs.Metric != nil {
		a.obs.Metric(MetricRecord{
			Name:  "dnstheory.request",
			Value: 1,
			Tags: map[string]string{
				"method": method,
				"path":   path,
				"status": statusTag(status),
			},
		})
	}
}

func statusTag(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
