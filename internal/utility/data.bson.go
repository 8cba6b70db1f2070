package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển struct thành map theo tag bson (bỏ qua các field omitempty rỗng)
func ToMap(s interface{}) (map[string]interface{}, error) {
	var out map[string]interface{}
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return out, nil
}
