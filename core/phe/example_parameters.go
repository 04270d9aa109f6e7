package phe

var (
	// ExampleParametersUint8 is the default parameter set: it supports one
	// 8-bit addition, whose worst-case output noise degree is 20 < D.
	ExampleParametersUint8 = ParametersLiteral{
		N:     8,
		D:     24,
		DP:    4,
		Delta: 1,
		Tau:   8,
	}

	// ExampleParametersUint16 supports one 16-bit addition, whose worst-case
	// output noise degree is 44 < D.
	ExampleParametersUint16 = ParametersLiteral{
		N:     16,
		D:     48,
		DP:    4,
		Delta: 1,
		Tau:   8,
	}

	// ExampleParametersShallow is a parameter set with a small secret key.
	// Fresh encryptions decrypt correctly but the output of a 16-bit addition
	// is not guaranteed to.
	ExampleParametersShallow = ParametersLiteral{
		N:     16,
		D:     6,
		DP:    3,
		Delta: 2,
		Tau:   5,
	}
)
