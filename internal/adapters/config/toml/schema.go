package toml

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	Layers    layersSchema    `toml:"layers"`
	Generator generatorSchema `toml:"generator"`
	Output    outputSchema    `toml:"output"`
	Decode    decodeSchema    `toml:"decode"`
	Stats     statsSchema     `toml:"stats"`
	Report    reportSchema    `toml:"report"`
	Log       logSchema       `toml:"log"`
}

type layersSchema struct {
	Count int    `toml:"count"`
	Seed  *int64 `toml:"seed,omitempty"`
}

type generatorSchema struct {
	MinCircles int     `toml:"min_circles"`
	MaxCircles int     `toml:"max_circles"`
	CoordMin   float64 `toml:"coord_min"`
	CoordMax   float64 `toml:"coord_max"`
	RadiusMin  float64 `toml:"radius_min"`
	RadiusMax  float64 `toml:"radius_max"`
}

type outputSchema struct {
	Dir      string `toml:"dir"`
	Layers   string `toml:"layers"`
	Averages string `toml:"averages"`
	Summary  string `toml:"summary"`
	MinMax   string `toml:"min_max"`
}

type decodeSchema struct {
	MalformedRow    string `toml:"malformed_row"`
	MalformedCircle string `toml:"malformed_circle"`
	InvalidNumber   string `toml:"invalid_number"`
}

type statsSchema struct {
	MinMaxMode string `toml:"min_max_mode"`
}

type reportSchema struct {
	Sanitize bool `toml:"sanitize"`
}

type logSchema struct {
	Level string `toml:"level"`
}
