package preset

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/traPtitech/thumbparam/service/thumbnail"
)

// Registry 名前付きプリセットから生成したParameterの集合
type Registry struct {
	params map[string]*thumbnail.Parameter
	logger *zap.Logger
}

// NewRegistry 全てのプリセットを検証してRegistryを生成します
// 1つでも不正なプリセットがあればエラーを返します
func NewRegistry(presets map[string]Config, logger *zap.Logger) (*Registry, error) {
	r := &Registry{
		params: make(map[string]*thumbnail.Parameter, len(presets)),
		logger: logger.Named("preset"),
	}
	for name, c := range presets {
		p, err := c.Build()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		r.params[name] = p
		r.logger.Debug("preset loaded", zap.String("name", name), zap.Object("parameter", p))
	}
	return r, nil
}

// Get 名前nameのParameterを返します
func (r *Registry) Get(name string) (*thumbnail.Parameter, bool) {
	p, ok := r.params[name]
	if !ok {
		r.logger.Warn("unknown preset", zap.String("name", name))
	}
	return p, ok
}

// Names プリセット名を昇順で返します
func (r *Registry) Names() []string {
	names := lo.Keys(r.params)
	sort.Strings(names)
	return names
}
