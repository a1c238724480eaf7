/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Redact returns cfg as JSON with every field tagged sensitive:"true"
// removed, for logging the effective configuration.
func Redact(cfg interface{}) ([]byte, error) {
	return json.Marshal(redact(reflect.ValueOf(cfg)))
}

func redact(v reflect.Value) interface{} {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}

		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if m, ok := v.Interface().(json.Marshaler); ok {
			return m
		}

		out := make(map[string]interface{})
		t := v.Type()

		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("sensitive") == "true" {
				continue
			}

			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				continue
			}

			if name == "" {
				name = f.Name
			}

			out[name] = redact(v.Field(i))
		}

		return out
	case reflect.Slice, reflect.Array:
		out := make([]interface{}, v.Len())
		for i := range out {
			out[i] = redact(v.Index(i))
		}

		return out
	case reflect.Map:
		out := make(map[string]interface{}, v.Len())

		iter := v.MapRange()
		for iter.Next() {
			if k, ok := iter.Key().Interface().(string); ok {
				out[k] = redact(iter.Value())
			}
		}

		return out
	default:
		return v.Interface()
	}
}
