package logger

import "log/slog"

// Error records err under "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request id under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Form records a form identifier under "form".
func Form(id string) slog.Attr {
	return slog.String("form", id)
}

// Field records a field identifier under "field".
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

// Fields records a list of field identifiers under "fields".
func Fields(ids []string) slog.Attr {
	if len(ids) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", ids)
}

// Payload groups submitted values under "payload".
func Payload(values map[string]string) slog.Attr {
	attrs := make([]slog.Attr, 0, len(values))
	for k, v := range values {
		attrs = append(attrs, slog.String(k, v))
	}
	return slog.Attr{Key: "payload", Value: slog.GroupValue(attrs...)}
}

// Reference records a submission reference under "reference".
func Reference(ref string) slog.Attr {
	return slog.String("reference", ref)
}
