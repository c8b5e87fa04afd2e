package postgres

// ValuationOf expone valuation a los tests del paquete postgres_test.
var ValuationOf = valuation
