package projection_test

import (
	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/projection"
)

const (
	grs80A  = 6378137.0
	grs80E2 = 0.006694380022900787
)

func dms(d, m, s float64) float64 {
	return geodesy.DegToRad(d + m/60 + s/3600)
}

func rad(d float64) float64 {
	return geodesy.DegToRad(d)
}

type fixture struct {
	name   string
	method projection.Method
	params projection.Parameters
	// round trip domain (degrees)
	west, east, south, north float64
}

func bessel() (float64, float64) {
	f := 1 / 299.1528128
	return 6377397.155, f * (2 - f)
}

func fixtures() []fixture {
	besselA, besselE2 := bessel()
	return []fixture{
		{"LambertI", projection.MethodLCC1SP, projection.Parameters{
			A: 6378388, E2: 0.006722670, Lambda0: dms(2, 20, 14.025), Phi0: rad(52), K0: 0.99987742, X0: 600000, Y0: 2200000},
			-5, 10, 42, 56},
		{"Lambert93", projection.MethodLCC2SP, projection.Parameters{
			A: grs80A, E2: grs80E2, Lambda0: rad(3), Phi0: rad(46.5), Phi1: rad(44), Phi2: rad(49), X0: 700000, Y0: 6600000},
			-6, 10, 41, 52},
		{"LCCSouth", projection.MethodLCC2SP, projection.Parameters{
			A: grs80A, E2: grs80E2, Lambda0: rad(145), Phi0: rad(-32), Phi1: rad(-30), Phi2: rad(-36), X0: 1000000, Y0: 10000000},
			138, 152, -40, -25},
		{"UTM31N", projection.MethodTM, projection.Parameters{
			A: grs80A, E2: grs80E2, Lambda0: rad(3), K0: 0.9996, X0: 500000},
			-1, 7, -80, 84},
		{"GaussLabordeReunion", projection.MethodGAUSSLABORDE, projection.Parameters{
			A: 6378388, E2: 0.00672267, Lambda0: dms(55, 32, 0), Phi0: dms(-21, 7, 0), K0: 1, X0: 160000, Y0: 50000},
			55, 56, -21.5, -20.8},
		{"LAEAEurope", projection.MethodLAEA, projection.Parameters{
			A: grs80A, E2: grs80E2, Lambda0: rad(10), Phi0: rad(52), X0: 4321000, Y0: 3210000},
			-30, 40, 30, 70},
		{"LAEANorth", projection.MethodLAEA, projection.Parameters{
			A: grs80A, E2: grs80E2, Lambda0: rad(0), Phi0: rad(90), X0: 2000000, Y0: 2000000},
			-179, 179, 45, 89.9},
		{"LAEASouth", projection.MethodLAEA, projection.Parameters{
			A: grs80A, E2: grs80E2, Lambda0: rad(0), Phi0: rad(-90), X0: 2000000, Y0: 2000000},
			-179, 179, -89.9, -45},
		{"StereoRD", projection.MethodSTEREOOBLIQUE, projection.Parameters{
			A: besselA, E2: besselE2, Lambda0: dms(5, 23, 15.5), Phi0: dms(52, 9, 22.178), K0: 0.9999079, X0: 155000, Y0: 463000},
			3, 7.5, 50.5, 53.7},
		{"StereoNorthA", projection.MethodSTEREOPOLARNORTH, projection.Parameters{
			A: grs80A, E2: grs80E2, K0: 0.994, X0: 2000000, Y0: 2000000},
			-179, 179, 60, 89.9},
		{"StereoSouthB", projection.MethodSTEREOPOLARSOUTH, projection.Parameters{
			A: grs80A, E2: grs80E2, Lambda0: rad(70), Phi1: rad(-71), X0: 6000000, Y0: 6000000},
			-179, 179, -89.9, -60},
	}
}

func (f fixture) conversion(withConvergence bool) (*projection.Conversion, error) {
	c := projection.New(f.name, f.method, f.params)
	c.WithConvergence = withConvergence
	return c, c.InitParam()
}
