package cct

// jisZ8725 is JIS Z8725:2015 Table B.1, the 2 degree observer blackbody locus
// in CIE 1960 UCS with the reciprocal slope of the isotherm through each
// point. Row i is reciprocal temperature i, i.e. CCT = 100000/i K.
//
// Published under PDL 1.0,
// https://www.digital.go.jp/resources/open_data/public_data_license_v1.0
var jisZ8725 = []ReferenceEntry{
	{U: 0.180046, V: 0.263577, RS: -4.09562}, // infinite
	{U: 0.180638, V: 0.265948, RS: -3.9133},  // 100,000K
	{U: 0.181309, V: 0.268506, RS: -3.71055},
	{U: 0.182067, V: 0.271236, RS: -3.49518},
	{U: 0.182919, V: 0.274118, RS: -3.2742},
	{U: 0.183872, V: 0.277131, RS: -3.05386},
	{U: 0.184932, V: 0.280251, RS: -2.8389},
	{U: 0.186103, V: 0.283452, RS: -2.63279},
	{U: 0.187389, V: 0.286709, RS: -2.43778},
	{U: 0.188792, V: 0.289997, RS: -2.25517},
	{U: 0.190312, V: 0.293293, RS: -2.08544}, // 10,000K
	{U: 0.191949, V: 0.296575, RS: -1.92856},
	{U: 0.193701, V: 0.299825, RS: -1.78409},
	{U: 0.195566, V: 0.303025, RS: -1.65136},
	{U: 0.19754, V: 0.306162, RS: -1.52956},
	{U: 0.199619, V: 0.309223, RS: -1.41784},
	{U: 0.201799, V: 0.312199, RS: -1.31534},
	{U: 0.204074, V: 0.315083, RS: -1.22121},
	{U: 0.20644, V: 0.317868, RS: -1.13468},
	{U: 0.208891, V: 0.32055, RS: -1.05503},
	{U: 0.211423, V: 0.323126, RS: -0.98159}, // 5000K
	{U: 0.21403, V: 0.325595, RS: -0.91377},
	{U: 0.216706, V: 0.327956, RS: -0.85104},
	{U: 0.219449, V: 0.330208, RS: -0.7929},
	{U: 0.222251, V: 0.332354, RS: -0.73895},
	{U: 0.22511, V: 0.334393, RS: -0.6888},
	{U: 0.22802, V: 0.336329, RS: -0.64211},
	{U: 0.230978, V: 0.338163, RS: -0.59859},
	{U: 0.233979, V: 0.339897, RS: -0.55795},
	{U: 0.23702, V: 0.341536, RS: -0.51998},
	{U: 0.240097, V: 0.34308, RS: -0.48444},
	{U: 0.243206, V: 0.344534, RS: -0.45115},
	{U: 0.246345, V: 0.345901, RS: -0.41994},
	{U: 0.249511, V: 0.347183, RS: -0.39065},
	{U: 0.252699, V: 0.348384, RS: -0.36315},
	{U: 0.255909, V: 0.349508, RS: -0.33729},
	{U: 0.259136, V: 0.350557, RS: -0.31298},
	{U: 0.262379, V: 0.351534, RS: -0.2901},
	{U: 0.265635, V: 0.352443, RS: -0.26855},
	{U: 0.268902, V: 0.353287, RS: -0.24826},
	{U: 0.272179, V: 0.354069, RS: -0.22914},
	{U: 0.275462, V: 0.354791, RS: -0.21111},
	{U: 0.27875, V: 0.355457, RS: -0.1941},
	{U: 0.282042, V: 0.35607, RS: -0.17806},
	{U: 0.285335, V: 0.356631, RS: -0.16293},
	{U: 0.288629, V: 0.357144, RS: -0.14864},
	{U: 0.291922, V: 0.357611, RS: -0.13515},
	{U: 0.295211, V: 0.358034, RS: -0.12241},
	{U: 0.298497, V: 0.358417, RS: -0.11038},
	{U: 0.301778, V: 0.35876, RS: -0.09902},
	{U: 0.305053, V: 0.359066, RS: -0.08828}, // 2000K
	{U: 0.30832, V: 0.359338, RS: -0.07814},
	{U: 0.311579, V: 0.359577, RS: -0.06856},
	{U: 0.314829, V: 0.359785, RS: -0.0595},
	{U: 0.318068, V: 0.359964, RS: -0.05094},
	{U: 0.321297, V: 0.360115, RS: -0.04285},
	{U: 0.324514, V: 0.36024, RS: -0.0352},
	{U: 0.327718, V: 0.360342, RS: -0.02797},
	{U: 0.330909, V: 0.36042, RS: -0.02114},
	{U: 0.334087, V: 0.360477, RS: -0.01467},
	{U: 0.33725, V: 0.360513, RS: -0.00856},
	{U: 0.340397, V: 0.360531, RS: -0.00279},
	{U: 0.34353, V: 0.360531, RS: 0.00267},
	{U: 0.346646, V: 0.360515, RS: 0.00784},
	{U: 0.349746, V: 0.360483, RS: 0.01272},
}
