package database

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/tanavishali52/BE-saleman/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec mô tả một index được khai báo qua struct tag `index`
type IndexSpec struct {
	Name   string
	Keys   bson.D
	Unique bool
	Sparse bool
	TTL    *int32
}

// EnsureCollections đảm bảo các collection tồn tại trong database.
// Database sẽ được MongoDB tạo tự động khi collection đầu tiên được tạo.
func EnsureCollections(ctx context.Context, db *mongo.Database, names []string) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	exists := make(map[string]bool, len(existing))
	for _, name := range existing {
		exists[name] = true
	}

	for _, name := range names {
		if exists[name] {
			continue
		}
		logger.WithCollection(name).Info("Collection chưa tồn tại, tạo mới")
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", db.Name())
	return nil
}

// parseOrder trích xuất thứ tự sắp xếp từ tag (1 hoặc -1)
func parseOrder(entry map[string]string) int {
	if entry["order"] == "-1" {
		return -1
	}
	return 1
}

// parseIndexTag tách tag index: các cấu hình cách nhau bởi ';', thuộc tính cách nhau bởi ','.
// Ví dụ: `index:"unique,sparse"`, `index:"single,order:-1"`, `index:"compound:shop_created"`.
func parseIndexTag(tag string) []map[string]string {
	result := []map[string]string{}
	for _, part := range strings.Split(tag, ";") {
		entry := map[string]string{}
		for _, subPart := range strings.Split(part, ",") {
			subPart = strings.TrimSpace(subPart)
			if subPart == "" {
				continue
			}
			kv := strings.SplitN(subPart, ":", 2)
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		if len(entry) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

// bsonFieldName lấy tên field từ tag bson (bỏ các option như omitempty)
func bsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("bson")
	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}
	return name
}

// IndexSpecsFromModel đọc các tag `index` của model và trả về danh sách index cần tạo
func IndexSpecsFromModel(model interface{}) ([]IndexSpec, error) {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	var specs []IndexSpec
	compoundOrder := []string{}
	compounds := map[string]*IndexSpec{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := bsonFieldName(field)
		if bsonField == "" {
			continue
		}

		for _, cfg := range parseIndexTag(tag) {
			_, sparse := cfg["sparse"]

			if _, ok := cfg["text"]; ok {
				specs = append(specs, IndexSpec{Name: bsonField + "_text", Keys: bson.D{{Key: bsonField, Value: "text"}}})
			}

			if _, ok := cfg["single"]; ok {
				specs = append(specs, IndexSpec{Name: bsonField + "_single", Keys: bson.D{{Key: bsonField, Value: parseOrder(cfg)}}, Sparse: sparse})
			}

			if _, ok := cfg["unique"]; ok {
				specs = append(specs, IndexSpec{Name: bsonField + "_unique", Keys: bson.D{{Key: bsonField, Value: 1}}, Unique: true, Sparse: sparse})
			}

			if ttlValue, ok := cfg["ttl"]; ok {
				ttl, err := strconv.Atoi(ttlValue)
				if err != nil {
					return nil, fmt.Errorf("TTL không hợp lệ cho field %s: %w", bsonField, err)
				}
				ttl32 := int32(ttl)
				specs = append(specs, IndexSpec{Name: bsonField + "_ttl", Keys: bson.D{{Key: bsonField, Value: 1}}, TTL: &ttl32})
			}

			if groupName, ok := cfg["compound"]; ok {
				spec, exists := compounds[groupName]
				if !exists {
					spec = &IndexSpec{Name: groupName, Unique: strings.Contains(groupName, "_unique")}
					compounds[groupName] = spec
					compoundOrder = append(compoundOrder, groupName)
				}
				spec.Keys = append(spec.Keys, bson.E{Key: bsonField, Value: parseOrder(cfg)})
				if sparse {
					spec.Sparse = true
				}
			}
		}
	}

	for _, name := range compoundOrder {
		specs = append(specs, *compounds[name])
	}
	return specs, nil
}

// indexOptions chuyển IndexSpec thành options của driver
func (s IndexSpec) indexOptions() *options.IndexOptions {
	opts := options.Index().SetName(s.Name)
	if s.Unique {
		opts.SetUnique(true)
	}
	if s.Sparse {
		opts.SetSparse(true)
	}
	if s.TTL != nil {
		opts.SetExpireAfterSeconds(*s.TTL)
	}
	return opts
}

// matches so sánh index đang có trong DB với spec
func (s IndexSpec) matches(existing bson.M) bool {
	existingKeys, ok := existing["key"].(bson.M)
	if !ok || len(existingKeys) != len(s.Keys) {
		return false
	}

	for _, key := range s.Keys {
		existingValue, exists := existingKeys[key.Key]
		if !exists {
			return false
		}
		if want, isInt := key.Value.(int); isInt {
			switch ev := existingValue.(type) {
			case int32:
				if int(ev) != want {
					return false
				}
			case int64:
				if int(ev) != want {
					return false
				}
			case float64:
				if int(ev) != want {
					return false
				}
			default:
				return false
			}
		} else if existingValue != key.Value {
			return false
		}
	}

	unique, _ := existing["unique"].(bool)
	if unique != s.Unique {
		return false
	}
	sparse, _ := existing["sparse"].(bool)
	if sparse != s.Sparse {
		return false
	}
	if s.TTL != nil {
		ttl, ok := existing["expireAfterSeconds"].(int32)
		if !ok || ttl != *s.TTL {
			return false
		}
	}
	return true
}

// CreateIndexes tạo (hoặc thay thế nếu sai cấu hình) các index khai báo trong model
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	log := logger.WithCollection(collection.Name())

	specs, err := IndexSpecsFromModel(model)
	if err != nil {
		return err
	}

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}
	defer cursor.Close(ctx)

	existingIndexes := map[string]bson.M{}
	for cursor.Next(ctx) {
		var indexInfo bson.M
		if err := cursor.Decode(&indexInfo); err != nil {
			return fmt.Errorf("không thể giải mã thông tin index: %w", err)
		}
		if name, ok := indexInfo["name"].(string); ok {
			existingIndexes[name] = indexInfo
		}
	}

	for _, spec := range specs {
		if existing, exists := existingIndexes[spec.Name]; exists {
			if spec.matches(existing) {
				log.Debugf("Index %s đã tồn tại và đúng cấu hình, bỏ qua", spec.Name)
				continue
			}
			if _, err := collection.Indexes().DropOne(ctx, spec.Name); err != nil {
				return fmt.Errorf("không thể xóa index %s: %w", spec.Name, err)
			}
			log.Infof("Đã xóa index cũ: %s", spec.Name)
		}

		if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    spec.Keys,
			Options: spec.indexOptions(),
		}); err != nil {
			return fmt.Errorf("không thể tạo index %s: %w", spec.Name, err)
		}
		log.Infof("Đã tạo index: %s", spec.Name)
	}

	return nil
}
