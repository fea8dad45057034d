package config

import "flag"

// BindFlags registers the configuration flags on fs, using the current values of c as defaults.
// Parsed values are written back into c.
func BindFlags(fs *flag.FlagSet, c *Config) {
	fs.IntVar(&c.Bounds.X, "width", c.Bounds.X, "Width of the window and of the tiled area")
	fs.IntVar(&c.Bounds.Y, "height", c.Bounds.Y, "Height of the window")
	fs.IntVar(&c.BoxCount, "boxes", c.BoxCount, "Number of static bounding boxes")
	fs.IntVar(&c.BoxSize.X, "box-w", c.BoxSize.X, "Width of each static box")
	fs.IntVar(&c.BoxSize.Y, "box-h", c.BoxSize.Y, "Height of each static box")
	fs.IntVar(&c.Padding.X, "pad-x", c.Padding.X, "Horizontal gap between static boxes")
	fs.IntVar(&c.Padding.Y, "pad-y", c.Padding.Y, "Vertical gap between static boxes")
	fs.IntVar(&c.QuerySize.X, "query-w", c.QuerySize.X, "Width of the query box")
	fs.IntVar(&c.QuerySize.Y, "query-h", c.QuerySize.Y, "Height of the query box")
	fs.IntVar(&c.TPS, "tps", c.TPS, "Target frames per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "Evaluator partitions (0 or 1 scans sequentially)")
}
