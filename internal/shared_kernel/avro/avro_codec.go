package avro

import (
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
)

const (
	cropChangedSchema = `{
		"type": "record",
		"name": "CropChanged",
		"namespace": "greenlink.crops",
		"fields": [
			{"name": "operation", "type": "string"},
			{"name": "id", "type": "string"},
			{"name": "name", "type": "string"},
			{"name": "type", "type": "string"},
			{"name": "season", "type": "string"},
			{"name": "yield_per_acre", "type": ["null", "double"], "default": null},
			{"name": "planting_date", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}], "default": null},
			{"name": "expected_harvest_date", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}], "default": null},
			{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	inventoryItemChangedSchema = `{
		"type": "record",
		"name": "InventoryItemChanged",
		"namespace": "greenlink.inventory",
		"fields": [
			{"name": "operation", "type": "string"},
			{"name": "id", "type": "string"},
			{"name": "item_id", "type": "string"},
			{"name": "item_name", "type": "string"},
			{"name": "item_brand", "type": "string"},
			{"name": "item_price", "type": "double"},
			{"name": "stock_count", "type": "int"},
			{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`
)

var _schemas = map[string]string{
	"CropChanged":          cropChangedSchema,
	"InventoryItemChanged": inventoryItemChangedSchema,
}

// Codec encodes one event type against its static schema. It satisfies
// goka.Codec.
type Codec struct {
	schema    avro.Schema
	prototype reflect.Type
}

func NewCodec(prototype any) (*Codec, error) {
	prototypeType := reflect.TypeOf(prototype)
	if prototypeType == nil {
		return nil, fmt.Errorf("nil prototype")
	}
	if prototypeType.Kind() == reflect.Ptr {
		prototypeType = prototypeType.Elem()
	}

	raw, exists := _schemas[prototypeType.Name()]
	if !exists {
		return nil, fmt.Errorf("no Avro schema found for message type: %s", prototypeType.Name())
	}

	schema, err := avro.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s schema: %w", prototypeType.Name(), err)
	}

	return &Codec{schema: schema, prototype: prototypeType}, nil
}

func (c *Codec) Schema() avro.Schema {
	return c.schema
}

func (c *Codec) Encode(value any) ([]byte, error) {
	valueType := reflect.TypeOf(value)
	if valueType != nil && valueType.Kind() == reflect.Ptr {
		valueType = valueType.Elem()
	}
	if valueType != c.prototype {
		return nil, fmt.Errorf("codec for %s cannot encode %T", c.prototype.Name(), value)
	}

	data, err := avro.Marshal(c.schema, value)
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}

	return data, nil
}

// Decode returns a pointer to a new prototype value.
func (c *Codec) Decode(data []byte) (any, error) {
	instance := reflect.New(c.prototype).Interface()

	if err := avro.Unmarshal(c.schema, data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}

	return instance, nil
}
