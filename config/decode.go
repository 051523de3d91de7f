// Copyright 2025 The Rivaas Authors
// Copyright 2025 Company.info B.V.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/go-viper/mapstructure/v2"
)

// Decode binds properties to the struct pointed to by out. Fields are
// matched through the "config" tag, case-insensitively, and string values
// are converted to the field types (for example "true" to bool, "5s" to
// time.Duration). Keys without a matching field are ignored.
//
//	var opts struct {
//	    Format   string `config:"format"`
//	    Timezone string `config:"timezone"`
//	}
//	err := config.Decode(props, &opts)
func Decode(p Properties, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return NewError("properties", "decode", err)
	}
	if err = decoder.Decode(map[string]string(p)); err != nil {
		return NewError("properties", "decode", err)
	}
	return nil
}
