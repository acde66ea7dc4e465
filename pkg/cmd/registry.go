// Package cmd provides common initialization functions for command-line applications.
package cmd

import (
	"log/slog"

	"github.com/pageforge/pageforge/pkg/actions/apicall"
	"github.com/pageforge/pageforge/pkg/actions/navigate"
	"github.com/pageforge/pageforge/pkg/actions/notify"
	"github.com/pageforge/pageforge/pkg/actions/runquery"
	"github.com/pageforge/pageforge/pkg/actions/setvariable"
	"github.com/pageforge/pageforge/pkg/actions/triggerevent"
	"github.com/pageforge/pageforge/pkg/actions/updatecomponent"
	"github.com/pageforge/pageforge/pkg/actions/visibility"
	"github.com/pageforge/pageforge/pkg/registry"
)

func registerNativeActions(reg *registry.Registry) {
	reg.RegisterAction(visibility.NewShowFactory())
	reg.RegisterAction(visibility.NewHideFactory())
	reg.RegisterAction(updatecomponent.NewFactory())
	reg.RegisterAction(apicall.NewFactory())
	reg.RegisterAction(runquery.NewFactory())
	reg.RegisterAction(navigate.NewFactory())
	reg.RegisterAction(notify.NewFactory())
	reg.RegisterAction(setvariable.NewFactory())
	reg.RegisterAction(triggerevent.NewFactory())
}

// NewRegistry builds the registry with every native action kind.
func NewRegistry(log *slog.Logger) *registry.Registry {
	reg := registry.NewRegistry(log)

	registerNativeActions(reg)

	return reg
}
