// Command gen writes typed GORM query helpers for the persistence models.
// Run it from the repository root after changing a model.
package main

import (
	"opencircle/internal/infra/persistence/model"

	"gorm.io/gen"
)

const outPath = "./internal/infra/persistence/query"

func newGenerator() *gen.Generator {
	g := gen.NewGenerator(gen.Config{
		OutPath:       outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)

	return g
}

func main() {
	newGenerator().Execute()
}
