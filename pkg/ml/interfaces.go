package ml

//go:generate mockgen -destination=mock_ml.go -package=ml github.com/civicworks/infrapulse/pkg/ml Service
