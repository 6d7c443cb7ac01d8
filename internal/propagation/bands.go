package propagation

// Band is one amateur HF allocation evaluated by the estimator
type Band struct {
	Label   string
	FreqMHz float64
}

// Bands lists the evaluated allocations in fixed frequency-ascending order.
// Each band is represented by a single nominal frequency rather than its
// full edge-to-edge allocation.
var Bands = []Band{
	{Label: "160m", FreqMHz: 1.8},
	{Label: "80m", FreqMHz: 3.5},
	{Label: "40m", FreqMHz: 7},
	{Label: "30m", FreqMHz: 10},
	{Label: "20m", FreqMHz: 14},
	{Label: "17m", FreqMHz: 18},
	{Label: "15m", FreqMHz: 21},
	{Label: "12m", FreqMHz: 24},
	{Label: "10m", FreqMHz: 28},
	{Label: "6m", FreqMHz: 50},
}
