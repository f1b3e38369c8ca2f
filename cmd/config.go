package cmd

import (
	"encoding/json"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"

	"github.com/traPtitech/thumbparam/logging"
	"github.com/traPtitech/thumbparam/service/thumbnail/preset"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev" json:"dev"`

	// Logging ログ設定
	Logging logging.Config `mapstructure:"logging" yaml:"logging" json:"logging"`

	// Presets 名前付きサムネイルプリセット
	Presets map[string]preset.Config `mapstructure:"presets" yaml:"presets" json:"presets"`
}

func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("logging.level", "")
	viper.SetDefault("logging.file", "")
	viper.SetDefault("logging.maxSizeMB", 10)
	viper.SetDefault("logging.maxBackups", 2)
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		jsonUnmarshalerHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// jsonUnmarshalerHook json.Unmarshalerを実装する型(optional.Ofなど)へ設定値をJSON経由でデコードします
func jsonUnmarshalerHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if data == nil || from == to {
			return data, nil
		}
		ptr := reflect.New(to)
		u, ok := ptr.Interface().(json.Unmarshaler)
		if !ok {
			return data, nil
		}

		// 環境変数から渡された文字列はまずJSONリテラルとして解釈する
		if s, ok := data.(string); ok && jsoniter.ConfigFastest.Valid([]byte(s)) {
			if err := u.UnmarshalJSON([]byte(s)); err == nil {
				return ptr.Elem().Interface(), nil
			}
			ptr = reflect.New(to)
			u = ptr.Interface().(json.Unmarshaler)
		}
		b, err := jsoniter.ConfigFastest.Marshal(data)
		if err != nil {
			return nil, err
		}
		if err := u.UnmarshalJSON(b); err != nil {
			return nil, err
		}
		return ptr.Elem().Interface(), nil
	}
}
