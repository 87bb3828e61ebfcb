package consts

const (
	GroundNode    = 0 // Reserved, never a driven output
	ThresholdNode = 1 // Global threshold DC source
	AxonBase      = 3 // First axon node, axon[i] = AxonBase + i

	AmpGain    = "999k" // Open loop gain of the ideal op-amp (VCVS)
	DiodeModel = "mod1"
	SourceName = "v1"

	MaxNeurons = 1024
)
