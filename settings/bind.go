package settings

import (
	"errors"
	"fmt"
	"reflect"
)

// Bind walks the exported fields of the struct pointed to by target and
// registers a definition for every field carrying a `machconf` tag, keeping
// the field updated by later Apply calls. The field's value at bind time
// becomes the setting's default unless the tag carries an explicit one.
// Untagged struct and struct-pointer fields are descended into.
//
// Example:
//
//	type Host struct {
//	    FontFamily string `machconf:"key:font.family doc:'Editor font family'"`
//	    FontHeight int    `machconf:"key:font.height default:120"`
//	}
func (r *Registry) Bind(target any) error {
	if target == nil {
		return errors.New("settings: bind target cannot be nil")
	}
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return errors.New("settings: bind target must be a non-nil pointer")
	}
	elem := value.Elem()
	if elem.Kind() != reflect.Struct {
		return errors.New("settings: bind target must point to a struct")
	}
	return r.bindStruct(elem)
}

func (r *Registry) bindStruct(current reflect.Value) error {
	t := current.Type()
	for i := 0; i < current.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldValue := current.Field(i)
		tagValue := field.Tag.Get("machconf")
		if tagValue == "" {
			if err := r.descend(fieldValue); err != nil {
				return err
			}
			continue
		}
		tag, err := parseBindTag(tagValue)
		if err != nil {
			return fmt.Errorf("settings: field %s: %w", field.Name, err)
		}
		if tag.Key == "" {
			return fmt.Errorf("settings: field %s: tag must specify key", field.Name)
		}
		def := Definition{Key: tag.Key, Doc: tag.Doc}
		if tag.HasDefault {
			value, err := coerce(tag.DefaultValue, fieldValue.Type())
			if err != nil {
				return fmt.Errorf("settings: field %s: default: %w", field.Name, err)
			}
			def.Default = value
		} else {
			def.Default = fieldValue.Interface()
		}
		if err := r.Register(def); err != nil {
			return err
		}
		fieldValue.Set(reflect.ValueOf(def.Default))
		r.bindings[tag.Key] = append(r.bindings[tag.Key], fieldValue)
	}
	return nil
}

func (r *Registry) descend(fieldValue reflect.Value) error {
	switch fieldValue.Kind() {
	case reflect.Struct:
		return r.bindStruct(fieldValue)
	case reflect.Pointer:
		elemType := fieldValue.Type().Elem()
		if elemType.Kind() == reflect.Struct {
			if fieldValue.IsNil() {
				fieldValue.Set(reflect.New(elemType))
			}
			return r.bindStruct(fieldValue.Elem())
		}
	}
	return nil
}
