package qwikyservice

import "time"

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector принимает длительность и результат вызовов внешнего API
type MetricsCollector interface {
	ObserveUpstream(operation, status string, duration time.Duration)
}
