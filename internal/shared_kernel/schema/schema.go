package schema

import (
	"green-link/internal/shared_kernel/domain"
)

type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeNumber  FieldType = "number"
	FieldTypeInteger FieldType = "integer"
	FieldTypeDate    FieldType = "date"
	FieldTypePhone   FieldType = "phone"
)

type Field struct {
	Name        string
	Label       string
	Type        FieldType
	Required    bool
	NonNegative bool
}

// Schema is the ordered field list of a resource kind.
type Schema struct {
	Kind   domain.Kind
	Fields []Field
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func NewSchemaBuilder(kind domain.Kind) *schemaBuilder {
	return &schemaBuilder{kind: kind}
}

type schemaBuilder struct {
	kind   domain.Kind
	fields []Field
}

func (b *schemaBuilder) Required(name, label string, fieldType FieldType) *schemaBuilder {
	b.fields = append(b.fields, Field{Name: name, Label: label, Type: fieldType, Required: true})
	return b
}

func (b *schemaBuilder) Optional(name, label string, fieldType FieldType) *schemaBuilder {
	b.fields = append(b.fields, Field{Name: name, Label: label, Type: fieldType})
	return b
}

// NonNegative marks the last added field as non-negative.
func (b *schemaBuilder) NonNegative() *schemaBuilder {
	if len(b.fields) > 0 {
		b.fields[len(b.fields)-1].NonNegative = true
	}
	return b
}

func (b *schemaBuilder) Build() Schema {
	fields := make([]Field, len(b.fields))
	copy(fields, b.fields)
	return Schema{Kind: b.kind, Fields: fields}
}
