/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package skinx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"

	"github.com/google/uuid"
	perrors "github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"dirpx.dev/skinx/apis"
	"dirpx.dev/skinx/document"
	"dirpx.dev/skinx/flattener"
)

// ErrNilRegistry is returned when an export is given no registry.
var ErrNilRegistry = errors.New("skinx: nil registry")

// Export writes the document for reg to dest, a path or afs URL
// (file://, mem://, ...). Per-item failures are listed in the report; only
// invalid input, an aborting field policy or the write itself fail the call.
func Export(ctx context.Context, reg apis.Registry, dest string, opts ...Option) (*Report, error) {
	data, report, err := Marshal(ctx, reg, opts...)
	if err != nil {
		return report, err
	}
	fs := afs.New()
	if err := fs.Upload(ctx, dest, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return report, perrors.Wrapf(err, "failed to write skin: %v", dest)
	}
	return report, nil
}

// ExportTo writes the document for reg to w.
func ExportTo(ctx context.Context, reg apis.Registry, w io.Writer, opts ...Option) (*Report, error) {
	data, report, err := Marshal(ctx, reg, opts...)
	if err != nil {
		return report, err
	}
	if _, err := w.Write(data); err != nil {
		return report, perrors.Wrap(err, "failed to write skin")
	}
	return report, nil
}

// Marshal renders the document for reg.
//
// Categories are written in order, each as an object keyed by its type id
// holding one object per resource in registration order, so an unchanged
// registry always renders to the same bytes.
func Marshal(ctx context.Context, reg apis.Registry, opts ...Option) ([]byte, *Report, error) {
	if reg == nil {
		return nil, nil, ErrNilRegistry
	}
	o := newOptions(opts)
	report := &Report{ID: uuid.New()}

	cfg := o.cfg
	log := cfg.Log().With("id", report.ID.String())
	cfg.Logger = log
	log.DebugContext(ctx, "export started", "categories", len(o.categories), "output", cfg.OutputType.String())

	bld := Builder()
	fl := flattener.New(cfg, bld.BuildResolver(cfg, reg), TypeNamer(), nil)
	w := document.NewBuilder()
	if err := w.ObjectStart(""); err != nil {
		return nil, report, err
	}
	for _, c := range o.categories {
		entries, _ := reg.Entries(c.Bucket())
		failures, err := fl.Flatten(ctx, c, entries, w)
		report.Failures = append(report.Failures, failures...)
		if err != nil {
			log.ErrorContext(ctx, "export aborted", "category", fl.CategoryKey(c), "error", err)
			return nil, report, err
		}
		report.Categories++
		report.Resources += len(c.Filter(entries)) - len(failures.Of(flattener.MalformedTintedName))
	}
	if err := w.ObjectEnd(); err != nil {
		return nil, report, err
	}
	root, err := w.Root()
	if err != nil {
		return nil, report, err
	}
	data, err := document.Encode(root, document.SettingsOf(cfg))
	if err != nil {
		return nil, report, perrors.Wrap(err, "failed to encode skin")
	}
	log.InfoContext(ctx, "export finished",
		"categories", report.Categories,
		"resources", report.Resources,
		"failures", len(report.Failures),
		"bytes", len(data))
	return data, report, nil
}

// ResolveName returns the name under which v is registered in category t.
// A category missing from reg yields ("", false).
func ResolveName(reg apis.Registry, t reflect.Type, v any) (string, bool) {
	if reg == nil {
		return "", false
	}
	cfg := Config()
	return Builder().BuildResolver(cfg, reg).Resolve(t, v)
}
