package mof

import "go.uber.org/fx"

var Module = fx.Module("mof",
	fx.Provide(
		NewTokenManager,
		NewClient,
		func(c *Client) API { return c },
	),
)
