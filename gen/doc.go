// Package gen turns validated schema definitions into Laravel source
// artifacts: Eloquent models, migrations, controllers, API resources,
// factories, DTOs and pivot-table migrations.
//
// Every generator is a pure transformation from (model, config) to
// (text, path); no generator holds state across calls or touches the
// filesystem. Writing is the Runner's job, which fans generation out
// across models and applies the skip-vs-overwrite policy:
//
//	cfg := gen.DefaultConfig()
//	cfg.Models = models
//	cfg.OutputDir = "/path/to/laravel-app"
//
//	runner := gen.NewRunner(cfg)
//	stats, err := runner.Run(ctx)
//
// # Layouts
//
// Artifacts resolve to one of two project layouts. The traditional
// layout puts each kind in its conventional Laravel folder (app/Models,
// app/Http/Controllers, database/factories, ...). The grouped layout
// (Config.UseDDD) nests class artifacts per model under
// app/Domain/{Model}/{Kind}. Migrations always land in
// database/migrations so the framework's chronological scan keeps
// working; their filename timestamp comes from Config.Now, which tests
// replace with a fixed clock.
//
// # Generators
//
// Model, controller, resource and factory artifacts are assembled with
// direct string building. Migration, pivot-table and DTO artifacts
// render embedded PHP templates through the template package.
package gen
