package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeCommas separates map entries with ", " rather than " ".
func EncodeCommas(v bool) EncodeOption {
	return func(es *EncState) { es.commas = v }
}
