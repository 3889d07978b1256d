package config

import (
	"reflect"
	"strings"
)

// SettingsExample uses reflection to build an example settings.json, so it
// stays in sync when fields are added to Settings
func SettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		jsonTag := t.Field(i).Tag.Get("json")
		if jsonTag == "" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		example[name] = exampleValue(t.Field(i).Type, name)
	}

	return example
}

func exampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return fieldName == "debug"
	case reflect.Int:
		switch fieldName {
		case "max_log_files":
			return 1000
		case "error_clear_delay":
			return DefaultErrorClearDelaySeconds
		case "refresh_interval_seconds":
			return DefaultRefreshIntervalSeconds
		case "request_timeout_seconds":
			return DefaultRequestTimeoutSeconds
		case "task_cache_ttl_seconds":
			return DefaultTaskCacheTTLSeconds
		case "verify_timeout_seconds":
			return DefaultVerifyTimeoutSeconds
		}
		return 10
	case reflect.String:
		switch fieldName {
		case "api_url":
			return DefaultAPIURL
		case "default_tracking_type":
			return "hourly"
		}
		return "example"
	}

	return nil
}
