package utility

import (
	"strings"

	"github.com/tanavishali52/BE-saleman/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID chuyển chuỗi thành ObjectID, trả về common.ErrInvalidID nếu sai định dạng
func ParseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil || objectID.IsZero() {
		return primitive.NilObjectID, common.ErrInvalidID
	}
	return objectID, nil
}
