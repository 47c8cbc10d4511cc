// Copyright 2025 walteh LLC
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

package opts

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/genpatch/pkg/config"
	"github.com/walteh/genpatch/pkg/fixes"
	"github.com/walteh/genpatch/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// DefaultConfigFile is where the generation scripts keep their settings.
const DefaultConfigFile = ".generation/config.ini"

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool

	once  sync.Once
	store *config.Store
	err   error
}

// 📦 Store loads the version store on first use
func (o *RootOpts) Store(ctx context.Context) (*config.Store, error) {
	o.once.Do(func() {
		o.store, o.err = config.Load(ctx, o.ConfigFile)
		if o.err != nil {
			o.err = errors.Errorf("loading config: %w", o.err)
		}
	})
	return o.store, o.err
}

// Versions resolves client versions from the store, which is only read once
// a rule set actually needs a version.
func (o *RootOpts) Versions(ctx context.Context) fixes.Versions {
	return &lazyVersions{ctx: ctx, opts: o}
}

// 🖥️ Console returns the user-facing logger writing to w
func (o *RootOpts) Console(ctx context.Context, w io.Writer) *log.Logger {
	level := zerolog.InfoLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}
	return log.New(w, level).WithZerolog(zerolog.Ctx(ctx).Level(level))
}

type lazyVersions struct {
	ctx  context.Context
	opts *RootOpts
}

func (v *lazyVersions) Version(language string) (string, error) {
	store, err := v.opts.Store(v.ctx)
	if err != nil {
		return "", err
	}
	return store.Version(language)
}
