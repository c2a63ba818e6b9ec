package notification

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"beacon/models"
)

// ClickAction is the fixed routing marker the mobile client uses to
// open the right screen when a notification is tapped.
const ClickAction = "FLUTTER_NOTIFICATION_CLICK"

// androidChannelID is the notification channel the app registers for
// high-importance alerts.
const androidChannelID = "high_importance_channel"

// Large free-text fields never make it into the data payload; FCM caps
// the message at 4KB.
var strippedMetadataKeys = map[string]bool{
	"fullDescription": true,
	"fullContent":     true,
}

// buildDataPayload assembles the string-keyed data section for a
// notification push: record identifier, type, routing marker,
// actionLink, and the flattened metadata.
func buildDataPayload(id string, n models.Notification) map[string]string {
	data := map[string]string{
		"notificationId": id,
		"type":           n.Type,
		"click_action":   ClickAction,
		"actionLink":     n.ActionLink,
	}
	flattenMetadata(n.Metadata, data)
	return data
}

// flattenMetadata copies metadata entries into the data payload as
// strings. Reserved payload keys are never overwritten.
func flattenMetadata(meta map[string]any, into map[string]string) {
	for key, value := range meta {
		if strippedMetadataKeys[key] {
			continue
		}
		if _, taken := into[key]; taken {
			continue
		}
		into[key] = stringifyMetadataValue(value)
	}
}

// stringifyMetadataValue renders primitives directly and serializes
// everything else to JSON.
func stringifyMetadataValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int, int32, int64:
		return fmt.Sprint(v)
	case float32, float64:
		return fmt.Sprint(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
