package sky

// Precomputed coefficient tables for the RGB variant of the Hosek-Wilkie
// analytic sky model, sampled over two ground albedo extremes, the ten
// tabulated turbidity bands, and six quintic spline control points.
//
// Coefficient slots are stored in the upstream table order A,B,C,D,E,F,G,I,H;
// slotOrder in model.go maps them back to the radiance formula.

// datasetRGB is indexed [channel][albedo][turbidity-1][controlPoint][slot].
var datasetRGB = [3][2][10][6][9]float32{
	{ // r
		{ // albedo 0
			{ // turbidity 1
				{-1.0557, -0.18, 1.781, 0.34375, -1.125, 0.24625, 0.0625, 0.44325, 1.6},
				{-1.02816, -0.1836, 1.9728, 0.3125, -1.08, 0.2561, 0.0625, 0.453888, 1.65},
				{-1.00062, -0.1872, 2.1646, 0.28125, -1.035, 0.26595, 0.0625, 0.464526, 1.7},
				{-0.97308, -0.1908, 2.3564, 0.25, -0.99, 0.2758, 0.0625, 0.475164, 1.75},
				{-0.94554, -0.1944, 2.5482, 0.21875, -0.945, 0.28565, 0.0625, 0.485802, 1.8},
				{-0.918, -0.198, 2.74, 0.1875, -0.9, 0.2955, 0.0625, 0.49644, 1.85},
			},
			{ // turbidity 2
				{-1.120867, -0.1933333, 1.736511, 0.7256944, -1.513889, 0.24625, 0.1013889, 0.44325, 1.722222},
				{-1.091627, -0.1972, 1.92352, 0.6597222, -1.453333, 0.2561, 0.1013889, 0.453888, 1.772222},
				{-1.062387, -0.2010667, 2.110529, 0.59375, -1.392778, 0.26595, 0.1013889, 0.464526, 1.822222},
				{-1.033147, -0.2049333, 2.297538, 0.5277778, -1.332222, 0.2758, 0.1013889, 0.475164, 1.872222},
				{-1.003907, -0.2088, 2.484547, 0.4618056, -1.271667, 0.28565, 0.1013889, 0.485802, 1.922222},
				{-0.9746667, -0.2126667, 2.671556, 0.3958333, -1.211111, 0.2955, 0.1013889, 0.49644, 1.972222},
			},
			{ // turbidity 3
				{-1.186033, -0.2066667, 1.692022, 1.107639, -1.902778, 0.24625, 0.1402778, 0.44325, 1.844444},
				{-1.155093, -0.2108, 1.87424, 1.006944, -1.826667, 0.2561, 0.1402778, 0.453888, 1.894444},
				{-1.124153, -0.2149333, 2.056458, 0.90625, -1.750556, 0.26595, 0.1402778, 0.464526, 1.944444},
				{-1.093213, -0.2190667, 2.238676, 0.8055556, -1.674444, 0.2758, 0.1402778, 0.475164, 1.994444},
				{-1.062273, -0.2232, 2.420893, 0.7048611, -1.598333, 0.28565, 0.1402778, 0.485802, 2.044444},
				{-1.031333, -0.2273333, 2.603111, 0.6041667, -1.522222, 0.2955, 0.1402778, 0.49644, 2.094444},
			},
			{ // turbidity 4
				{-1.2512, -0.22, 1.647533, 1.489583, -2.291667, 0.24625, 0.1791667, 0.44325, 1.966667},
				{-1.21856, -0.2244, 1.82496, 1.354167, -2.2, 0.2561, 0.1791667, 0.453888, 2.016667},
				{-1.18592, -0.2288, 2.002387, 1.21875, -2.108333, 0.26595, 0.1791667, 0.464526, 2.066667},
				{-1.15328, -0.2332, 2.179813, 1.083333, -2.016667, 0.2758, 0.1791667, 0.475164, 2.116667},
				{-1.12064, -0.2376, 2.35724, 0.9479167, -1.925, 0.28565, 0.1791667, 0.485802, 2.166667},
				{-1.088, -0.242, 2.534667, 0.8125, -1.833333, 0.2955, 0.1791667, 0.49644, 2.216667},
			},
			{ // turbidity 5
				{-1.316367, -0.2333333, 1.603044, 1.871528, -2.680556, 0.24625, 0.2180556, 0.44325, 2.088889},
				{-1.282027, -0.238, 1.77568, 1.701389, -2.573333, 0.2561, 0.2180556, 0.453888, 2.138889},
				{-1.247687, -0.2426667, 1.948316, 1.53125, -2.466111, 0.26595, 0.2180556, 0.464526, 2.188889},
				{-1.213347, -0.2473333, 2.120951, 1.361111, -2.358889, 0.2758, 0.2180556, 0.475164, 2.238889},
				{-1.179007, -0.252, 2.293587, 1.190972, -2.251667, 0.28565, 0.2180556, 0.485802, 2.288889},
				{-1.144667, -0.2566667, 2.466222, 1.020833, -2.144444, 0.2955, 0.2180556, 0.49644, 2.338889},
			},
			{ // turbidity 6
				{-1.381533, -0.2466667, 1.558556, 2.253472, -3.069444, 0.24625, 0.2569444, 0.44325, 2.211111},
				{-1.345493, -0.2516, 1.7264, 2.048611, -2.946667, 0.2561, 0.2569444, 0.453888, 2.261111},
				{-1.309453, -0.2565333, 1.894244, 1.84375, -2.823889, 0.26595, 0.2569444, 0.464526, 2.311111},
				{-1.273413, -0.2614667, 2.062089, 1.638889, -2.701111, 0.2758, 0.2569444, 0.475164, 2.361111},
				{-1.237373, -0.2664, 2.229933, 1.434028, -2.578333, 0.28565, 0.2569444, 0.485802, 2.411111},
				{-1.201333, -0.2713333, 2.397778, 1.229167, -2.455556, 0.2955, 0.2569444, 0.49644, 2.461111},
			},
			{ // turbidity 7
				{-1.4467, -0.26, 1.514067, 2.635417, -3.458333, 0.24625, 0.2958333, 0.44325, 2.333333},
				{-1.40896, -0.2652, 1.67712, 2.395833, -3.32, 0.2561, 0.2958333, 0.453888, 2.383333},
				{-1.37122, -0.2704, 1.840173, 2.15625, -3.181667, 0.26595, 0.2958333, 0.464526, 2.433333},
				{-1.33348, -0.2756, 2.003227, 1.916667, -3.043333, 0.2758, 0.2958333, 0.475164, 2.483333},
				{-1.29574, -0.2808, 2.16628, 1.677083, -2.905, 0.28565, 0.2958333, 0.485802, 2.533333},
				{-1.258, -0.286, 2.329333, 1.4375, -2.766667, 0.2955, 0.2958333, 0.49644, 2.583333},
			},
			{ // turbidity 8
				{-1.511867, -0.2733333, 1.469578, 3.017361, -3.847222, 0.24625, 0.3347222, 0.44325, 2.455556},
				{-1.472427, -0.2788, 1.62784, 2.743056, -3.693333, 0.2561, 0.3347222, 0.453888, 2.505556},
				{-1.432987, -0.2842667, 1.786102, 2.46875, -3.539444, 0.26595, 0.3347222, 0.464526, 2.555556},
				{-1.393547, -0.2897333, 1.944364, 2.194444, -3.385556, 0.2758, 0.3347222, 0.475164, 2.605556},
				{-1.354107, -0.2952, 2.102627, 1.920139, -3.231667, 0.28565, 0.3347222, 0.485802, 2.655556},
				{-1.314667, -0.3006667, 2.260889, 1.645833, -3.077778, 0.2955, 0.3347222, 0.49644, 2.705556},
			},
			{ // turbidity 9
				{-1.577033, -0.2866667, 1.425089, 3.399306, -4.236111, 0.24625, 0.3736111, 0.44325, 2.577778},
				{-1.535893, -0.2924, 1.57856, 3.090278, -4.066667, 0.2561, 0.3736111, 0.453888, 2.627778},
				{-1.494753, -0.2981333, 1.732031, 2.78125, -3.897222, 0.26595, 0.3736111, 0.464526, 2.677778},
				{-1.453613, -0.3038667, 1.885502, 2.472222, -3.727778, 0.2758, 0.3736111, 0.475164, 2.727778},
				{-1.412473, -0.3096, 2.038973, 2.163194, -3.558333, 0.28565, 0.3736111, 0.485802, 2.777778},
				{-1.371333, -0.3153333, 2.192444, 1.854167, -3.388889, 0.2955, 0.3736111, 0.49644, 2.827778},
			},
			{ // turbidity 10
				{-1.6422, -0.3, 1.3806, 3.78125, -4.625, 0.24625, 0.4125, 0.44325, 2.7},
				{-1.59936, -0.306, 1.52928, 3.4375, -4.44, 0.2561, 0.4125, 0.453888, 2.75},
				{-1.55652, -0.312, 1.67796, 3.09375, -4.255, 0.26595, 0.4125, 0.464526, 2.8},
				{-1.51368, -0.318, 1.82664, 2.75, -4.07, 0.2758, 0.4125, 0.475164, 2.85},
				{-1.47084, -0.324, 1.97532, 2.40625, -3.885, 0.28565, 0.4125, 0.485802, 2.9},
				{-1.428, -0.33, 2.124, 2.0625, -3.7, 0.2955, 0.4125, 0.49644, 2.95},
			},
		},
		{ // albedo 1
			{ // turbidity 1
				{-1.0557, -0.18, 2.131, 0.34375, -1.125, 0.44325, 0.0625, 0.64025, 1.6},
				{-1.02816, -0.1836, 2.3228, 0.3125, -1.08, 0.46098, 0.0625, 0.655616, 1.65},
				{-1.00062, -0.1872, 2.5146, 0.28125, -1.035, 0.47871, 0.0625, 0.670982, 1.7},
				{-0.97308, -0.1908, 2.7064, 0.25, -0.99, 0.49644, 0.0625, 0.686348, 1.75},
				{-0.94554, -0.1944, 2.8982, 0.21875, -0.945, 0.51417, 0.0625, 0.701714, 1.8},
				{-0.918, -0.198, 3.09, 0.1875, -0.9, 0.5319, 0.0625, 0.71708, 1.85},
			},
			{ // turbidity 2
				{-1.120867, -0.1933333, 2.086511, 0.7256944, -1.513889, 0.44325, 0.1013889, 0.64025, 1.722222},
				{-1.091627, -0.1972, 2.27352, 0.6597222, -1.453333, 0.46098, 0.1013889, 0.655616, 1.772222},
				{-1.062387, -0.2010667, 2.460529, 0.59375, -1.392778, 0.47871, 0.1013889, 0.670982, 1.822222},
				{-1.033147, -0.2049333, 2.647538, 0.5277778, -1.332222, 0.49644, 0.1013889, 0.686348, 1.872222},
				{-1.003907, -0.2088, 2.834547, 0.4618056, -1.271667, 0.51417, 0.1013889, 0.701714, 1.922222},
				{-0.9746667, -0.2126667, 3.021556, 0.3958333, -1.211111, 0.5319, 0.1013889, 0.71708, 1.972222},
			},
			{ // turbidity 3
				{-1.186033, -0.2066667, 2.042022, 1.107639, -1.902778, 0.44325, 0.1402778, 0.64025, 1.844444},
				{-1.155093, -0.2108, 2.22424, 1.006944, -1.826667, 0.46098, 0.1402778, 0.655616, 1.894444},
				{-1.124153, -0.2149333, 2.406458, 0.90625, -1.750556, 0.47871, 0.1402778, 0.670982, 1.944444},
				{-1.093213, -0.2190667, 2.588676, 0.8055556, -1.674444, 0.49644, 0.1402778, 0.686348, 1.994444},
				{-1.062273, -0.2232, 2.770893, 0.7048611, -1.598333, 0.51417, 0.1402778, 0.701714, 2.044444},
				{-1.031333, -0.2273333, 2.953111, 0.6041667, -1.522222, 0.5319, 0.1402778, 0.71708, 2.094444},
			},
			{ // turbidity 4
				{-1.2512, -0.22, 1.997533, 1.489583, -2.291667, 0.44325, 0.1791667, 0.64025, 1.966667},
				{-1.21856, -0.2244, 2.17496, 1.354167, -2.2, 0.46098, 0.1791667, 0.655616, 2.016667},
				{-1.18592, -0.2288, 2.352387, 1.21875, -2.108333, 0.47871, 0.1791667, 0.670982, 2.066667},
				{-1.15328, -0.2332, 2.529813, 1.083333, -2.016667, 0.49644, 0.1791667, 0.686348, 2.116667},
				{-1.12064, -0.2376, 2.70724, 0.9479167, -1.925, 0.51417, 0.1791667, 0.701714, 2.166667},
				{-1.088, -0.242, 2.884667, 0.8125, -1.833333, 0.5319, 0.1791667, 0.71708, 2.216667},
			},
			{ // turbidity 5
				{-1.316367, -0.2333333, 1.953044, 1.871528, -2.680556, 0.44325, 0.2180556, 0.64025, 2.088889},
				{-1.282027, -0.238, 2.12568, 1.701389, -2.573333, 0.46098, 0.2180556, 0.655616, 2.138889},
				{-1.247687, -0.2426667, 2.298316, 1.53125, -2.466111, 0.47871, 0.2180556, 0.670982, 2.188889},
				{-1.213347, -0.2473333, 2.470951, 1.361111, -2.358889, 0.49644, 0.2180556, 0.686348, 2.238889},
				{-1.179007, -0.252, 2.643587, 1.190972, -2.251667, 0.51417, 0.2180556, 0.701714, 2.288889},
				{-1.144667, -0.2566667, 2.816222, 1.020833, -2.144444, 0.5319, 0.2180556, 0.71708, 2.338889},
			},
			{ // turbidity 6
				{-1.381533, -0.2466667, 1.908556, 2.253472, -3.069444, 0.44325, 0.2569444, 0.64025, 2.211111},
				{-1.345493, -0.2516, 2.0764, 2.048611, -2.946667, 0.46098, 0.2569444, 0.655616, 2.261111},
				{-1.309453, -0.2565333, 2.244244, 1.84375, -2.823889, 0.47871, 0.2569444, 0.670982, 2.311111},
				{-1.273413, -0.2614667, 2.412089, 1.638889, -2.701111, 0.49644, 0.2569444, 0.686348, 2.361111},
				{-1.237373, -0.2664, 2.579933, 1.434028, -2.578333, 0.51417, 0.2569444, 0.701714, 2.411111},
				{-1.201333, -0.2713333, 2.747778, 1.229167, -2.455556, 0.5319, 0.2569444, 0.71708, 2.461111},
			},
			{ // turbidity 7
				{-1.4467, -0.26, 1.864067, 2.635417, -3.458333, 0.44325, 0.2958333, 0.64025, 2.333333},
				{-1.40896, -0.2652, 2.02712, 2.395833, -3.32, 0.46098, 0.2958333, 0.655616, 2.383333},
				{-1.37122, -0.2704, 2.190173, 2.15625, -3.181667, 0.47871, 0.2958333, 0.670982, 2.433333},
				{-1.33348, -0.2756, 2.353227, 1.916667, -3.043333, 0.49644, 0.2958333, 0.686348, 2.483333},
				{-1.29574, -0.2808, 2.51628, 1.677083, -2.905, 0.51417, 0.2958333, 0.701714, 2.533333},
				{-1.258, -0.286, 2.679333, 1.4375, -2.766667, 0.5319, 0.2958333, 0.71708, 2.583333},
			},
			{ // turbidity 8
				{-1.511867, -0.2733333, 1.819578, 3.017361, -3.847222, 0.44325, 0.3347222, 0.64025, 2.455556},
				{-1.472427, -0.2788, 1.97784, 2.743056, -3.693333, 0.46098, 0.3347222, 0.655616, 2.505556},
				{-1.432987, -0.2842667, 2.136102, 2.46875, -3.539444, 0.47871, 0.3347222, 0.670982, 2.555556},
				{-1.393547, -0.2897333, 2.294364, 2.194444, -3.385556, 0.49644, 0.3347222, 0.686348, 2.605556},
				{-1.354107, -0.2952, 2.452627, 1.920139, -3.231667, 0.51417, 0.3347222, 0.701714, 2.655556},
				{-1.314667, -0.3006667, 2.610889, 1.645833, -3.077778, 0.5319, 0.3347222, 0.71708, 2.705556},
			},
			{ // turbidity 9
				{-1.577033, -0.2866667, 1.775089, 3.399306, -4.236111, 0.44325, 0.3736111, 0.64025, 2.577778},
				{-1.535893, -0.2924, 1.92856, 3.090278, -4.066667, 0.46098, 0.3736111, 0.655616, 2.627778},
				{-1.494753, -0.2981333, 2.082031, 2.78125, -3.897222, 0.47871, 0.3736111, 0.670982, 2.677778},
				{-1.453613, -0.3038667, 2.235502, 2.472222, -3.727778, 0.49644, 0.3736111, 0.686348, 2.727778},
				{-1.412473, -0.3096, 2.388973, 2.163194, -3.558333, 0.51417, 0.3736111, 0.701714, 2.777778},
				{-1.371333, -0.3153333, 2.542444, 1.854167, -3.388889, 0.5319, 0.3736111, 0.71708, 2.827778},
			},
			{ // turbidity 10
				{-1.6422, -0.3, 1.7306, 3.78125, -4.625, 0.44325, 0.4125, 0.64025, 2.7},
				{-1.59936, -0.306, 1.87928, 3.4375, -4.44, 0.46098, 0.4125, 0.655616, 2.75},
				{-1.55652, -0.312, 2.02796, 3.09375, -4.255, 0.47871, 0.4125, 0.670982, 2.8},
				{-1.51368, -0.318, 2.17664, 2.75, -4.07, 0.49644, 0.4125, 0.686348, 2.85},
				{-1.47084, -0.324, 2.32532, 2.40625, -3.885, 0.51417, 0.4125, 0.701714, 2.9},
				{-1.428, -0.33, 2.474, 2.0625, -3.7, 0.5319, 0.4125, 0.71708, 2.95},
			},
		},
	},
	{ // g
		{ // albedo 0
			{ // turbidity 1
				{-1.035, -0.18, 2.1385, 0.275, -1.125, 0.249375, 0.05, 0.448875, 1.6},
				{-1.008, -0.1836, 2.3688, 0.25, -1.08, 0.25935, 0.05, 0.459648, 1.65},
				{-0.981, -0.1872, 2.5991, 0.225, -1.035, 0.269325, 0.05, 0.470421, 1.7},
				{-0.954, -0.1908, 2.8294, 0.2, -0.99, 0.2793, 0.05, 0.481194, 1.75},
				{-0.927, -0.1944, 3.0597, 0.175, -0.945, 0.289275, 0.05, 0.491967, 1.8},
				{-0.9, -0.198, 3.29, 0.15, -0.9, 0.29925, 0.05, 0.50274, 1.85},
			},
			{ // turbidity 2
				{-1.098889, -0.1933333, 2.078122, 0.5805556, -1.513889, 0.249375, 0.08111111, 0.448875, 1.722222},
				{-1.070222, -0.1972, 2.30192, 0.5277778, -1.453333, 0.25935, 0.08111111, 0.459648, 1.772222},
				{-1.041556, -0.2010667, 2.525718, 0.475, -1.392778, 0.269325, 0.08111111, 0.470421, 1.822222},
				{-1.012889, -0.2049333, 2.749516, 0.4222222, -1.332222, 0.2793, 0.08111111, 0.481194, 1.872222},
				{-0.9842222, -0.2088, 2.973313, 0.3694444, -1.271667, 0.289275, 0.08111111, 0.491967, 1.922222},
				{-0.9555556, -0.2126667, 3.197111, 0.3166667, -1.211111, 0.29925, 0.08111111, 0.50274, 1.972222},
			},
			{ // turbidity 3
				{-1.162778, -0.2066667, 2.017744, 0.8861111, -1.902778, 0.249375, 0.1122222, 0.448875, 1.844444},
				{-1.132444, -0.2108, 2.23504, 0.8055556, -1.826667, 0.25935, 0.1122222, 0.459648, 1.894444},
				{-1.102111, -0.2149333, 2.452336, 0.725, -1.750556, 0.269325, 0.1122222, 0.470421, 1.944444},
				{-1.071778, -0.2190667, 2.669631, 0.6444444, -1.674444, 0.2793, 0.1122222, 0.481194, 1.994444},
				{-1.041444, -0.2232, 2.886927, 0.5638889, -1.598333, 0.289275, 0.1122222, 0.491967, 2.044444},
				{-1.011111, -0.2273333, 3.104222, 0.4833333, -1.522222, 0.29925, 0.1122222, 0.50274, 2.094444},
			},
			{ // turbidity 4
				{-1.226667, -0.22, 1.957367, 1.191667, -2.291667, 0.249375, 0.1433333, 0.448875, 1.966667},
				{-1.194667, -0.2244, 2.16816, 1.083333, -2.2, 0.25935, 0.1433333, 0.459648, 2.016667},
				{-1.162667, -0.2288, 2.378953, 0.975, -2.108333, 0.269325, 0.1433333, 0.470421, 2.066667},
				{-1.130667, -0.2332, 2.589747, 0.8666667, -2.016667, 0.2793, 0.1433333, 0.481194, 2.116667},
				{-1.098667, -0.2376, 2.80054, 0.7583333, -1.925, 0.289275, 0.1433333, 0.491967, 2.166667},
				{-1.066667, -0.242, 3.011333, 0.65, -1.833333, 0.29925, 0.1433333, 0.50274, 2.216667},
			},
			{ // turbidity 5
				{-1.290556, -0.2333333, 1.896989, 1.497222, -2.680556, 0.249375, 0.1744444, 0.448875, 2.088889},
				{-1.256889, -0.238, 2.10128, 1.361111, -2.573333, 0.25935, 0.1744444, 0.459648, 2.138889},
				{-1.223222, -0.2426667, 2.305571, 1.225, -2.466111, 0.269325, 0.1744444, 0.470421, 2.188889},
				{-1.189556, -0.2473333, 2.509862, 1.088889, -2.358889, 0.2793, 0.1744444, 0.481194, 2.238889},
				{-1.155889, -0.252, 2.714153, 0.9527778, -2.251667, 0.289275, 0.1744444, 0.491967, 2.288889},
				{-1.122222, -0.2566667, 2.918444, 0.8166667, -2.144444, 0.29925, 0.1744444, 0.50274, 2.338889},
			},
			{ // turbidity 6
				{-1.354444, -0.2466667, 1.836611, 1.802778, -3.069444, 0.249375, 0.2055556, 0.448875, 2.211111},
				{-1.319111, -0.2516, 2.0344, 1.638889, -2.946667, 0.25935, 0.2055556, 0.459648, 2.261111},
				{-1.283778, -0.2565333, 2.232189, 1.475, -2.823889, 0.269325, 0.2055556, 0.470421, 2.311111},
				{-1.248444, -0.2614667, 2.429978, 1.311111, -2.701111, 0.2793, 0.2055556, 0.481194, 2.361111},
				{-1.213111, -0.2664, 2.627767, 1.147222, -2.578333, 0.289275, 0.2055556, 0.491967, 2.411111},
				{-1.177778, -0.2713333, 2.825556, 0.9833333, -2.455556, 0.29925, 0.2055556, 0.50274, 2.461111},
			},
			{ // turbidity 7
				{-1.418333, -0.26, 1.776233, 2.108333, -3.458333, 0.249375, 0.2366667, 0.448875, 2.333333},
				{-1.381333, -0.2652, 1.96752, 1.916667, -3.32, 0.25935, 0.2366667, 0.459648, 2.383333},
				{-1.344333, -0.2704, 2.158807, 1.725, -3.181667, 0.269325, 0.2366667, 0.470421, 2.433333},
				{-1.307333, -0.2756, 2.350093, 1.533333, -3.043333, 0.2793, 0.2366667, 0.481194, 2.483333},
				{-1.270333, -0.2808, 2.54138, 1.341667, -2.905, 0.289275, 0.2366667, 0.491967, 2.533333},
				{-1.233333, -0.286, 2.732667, 1.15, -2.766667, 0.29925, 0.2366667, 0.50274, 2.583333},
			},
			{ // turbidity 8
				{-1.482222, -0.2733333, 1.715856, 2.413889, -3.847222, 0.249375, 0.2677778, 0.448875, 2.455556},
				{-1.443556, -0.2788, 1.90064, 2.194444, -3.693333, 0.25935, 0.2677778, 0.459648, 2.505556},
				{-1.404889, -0.2842667, 2.085424, 1.975, -3.539444, 0.269325, 0.2677778, 0.470421, 2.555556},
				{-1.366222, -0.2897333, 2.270209, 1.755556, -3.385556, 0.2793, 0.2677778, 0.481194, 2.605556},
				{-1.327556, -0.2952, 2.454993, 1.536111, -3.231667, 0.289275, 0.2677778, 0.491967, 2.655556},
				{-1.288889, -0.3006667, 2.639778, 1.316667, -3.077778, 0.29925, 0.2677778, 0.50274, 2.705556},
			},
			{ // turbidity 9
				{-1.546111, -0.2866667, 1.655478, 2.719444, -4.236111, 0.249375, 0.2988889, 0.448875, 2.577778},
				{-1.505778, -0.2924, 1.83376, 2.472222, -4.066667, 0.25935, 0.2988889, 0.459648, 2.627778},
				{-1.465444, -0.2981333, 2.012042, 2.225, -3.897222, 0.269325, 0.2988889, 0.470421, 2.677778},
				{-1.425111, -0.3038667, 2.190324, 1.977778, -3.727778, 0.2793, 0.2988889, 0.481194, 2.727778},
				{-1.384778, -0.3096, 2.368607, 1.730556, -3.558333, 0.289275, 0.2988889, 0.491967, 2.777778},
				{-1.344444, -0.3153333, 2.546889, 1.483333, -3.388889, 0.29925, 0.2988889, 0.50274, 2.827778},
			},
			{ // turbidity 10
				{-1.61, -0.3, 1.5951, 3.025, -4.625, 0.249375, 0.33, 0.448875, 2.7},
				{-1.568, -0.306, 1.76688, 2.75, -4.44, 0.25935, 0.33, 0.459648, 2.75},
				{-1.526, -0.312, 1.93866, 2.475, -4.255, 0.269325, 0.33, 0.470421, 2.8},
				{-1.484, -0.318, 2.11044, 2.2, -4.07, 0.2793, 0.33, 0.481194, 2.85},
				{-1.442, -0.324, 2.28222, 1.925, -3.885, 0.289275, 0.33, 0.491967, 2.9},
				{-1.4, -0.33, 2.454, 1.65, -3.7, 0.29925, 0.33, 0.50274, 2.95},
			},
		},
		{ // albedo 1
			{ // turbidity 1
				{-1.035, -0.18, 2.4885, 0.275, -1.125, 0.448875, 0.05, 0.648375, 1.6},
				{-1.008, -0.1836, 2.7188, 0.25, -1.08, 0.46683, 0.05, 0.663936, 1.65},
				{-0.981, -0.1872, 2.9491, 0.225, -1.035, 0.484785, 0.05, 0.679497, 1.7},
				{-0.954, -0.1908, 3.1794, 0.2, -0.99, 0.50274, 0.05, 0.695058, 1.75},
				{-0.927, -0.1944, 3.4097, 0.175, -0.945, 0.520695, 0.05, 0.710619, 1.8},
				{-0.9, -0.198, 3.64, 0.15, -0.9, 0.53865, 0.05, 0.72618, 1.85},
			},
			{ // turbidity 2
				{-1.098889, -0.1933333, 2.428122, 0.5805556, -1.513889, 0.448875, 0.08111111, 0.648375, 1.722222},
				{-1.070222, -0.1972, 2.65192, 0.5277778, -1.453333, 0.46683, 0.08111111, 0.663936, 1.772222},
				{-1.041556, -0.2010667, 2.875718, 0.475, -1.392778, 0.484785, 0.08111111, 0.679497, 1.822222},
				{-1.012889, -0.2049333, 3.099516, 0.4222222, -1.332222, 0.50274, 0.08111111, 0.695058, 1.872222},
				{-0.9842222, -0.2088, 3.323313, 0.3694444, -1.271667, 0.520695, 0.08111111, 0.710619, 1.922222},
				{-0.9555556, -0.2126667, 3.547111, 0.3166667, -1.211111, 0.53865, 0.08111111, 0.72618, 1.972222},
			},
			{ // turbidity 3
				{-1.162778, -0.2066667, 2.367744, 0.8861111, -1.902778, 0.448875, 0.1122222, 0.648375, 1.844444},
				{-1.132444, -0.2108, 2.58504, 0.8055556, -1.826667, 0.46683, 0.1122222, 0.663936, 1.894444},
				{-1.102111, -0.2149333, 2.802336, 0.725, -1.750556, 0.484785, 0.1122222, 0.679497, 1.944444},
				{-1.071778, -0.2190667, 3.019631, 0.6444444, -1.674444, 0.50274, 0.1122222, 0.695058, 1.994444},
				{-1.041444, -0.2232, 3.236927, 0.5638889, -1.598333, 0.520695, 0.1122222, 0.710619, 2.044444},
				{-1.011111, -0.2273333, 3.454222, 0.4833333, -1.522222, 0.53865, 0.1122222, 0.72618, 2.094444},
			},
			{ // turbidity 4
				{-1.226667, -0.22, 2.307367, 1.191667, -2.291667, 0.448875, 0.1433333, 0.648375, 1.966667},
				{-1.194667, -0.2244, 2.51816, 1.083333, -2.2, 0.46683, 0.1433333, 0.663936, 2.016667},
				{-1.162667, -0.2288, 2.728953, 0.975, -2.108333, 0.484785, 0.1433333, 0.679497, 2.066667},
				{-1.130667, -0.2332, 2.939747, 0.8666667, -2.016667, 0.50274, 0.1433333, 0.695058, 2.116667},
				{-1.098667, -0.2376, 3.15054, 0.7583333, -1.925, 0.520695, 0.1433333, 0.710619, 2.166667},
				{-1.066667, -0.242, 3.361333, 0.65, -1.833333, 0.53865, 0.1433333, 0.72618, 2.216667},
			},
			{ // turbidity 5
				{-1.290556, -0.2333333, 2.246989, 1.497222, -2.680556, 0.448875, 0.1744444, 0.648375, 2.088889},
				{-1.256889, -0.238, 2.45128, 1.361111, -2.573333, 0.46683, 0.1744444, 0.663936, 2.138889},
				{-1.223222, -0.2426667, 2.655571, 1.225, -2.466111, 0.484785, 0.1744444, 0.679497, 2.188889},
				{-1.189556, -0.2473333, 2.859862, 1.088889, -2.358889, 0.50274, 0.1744444, 0.695058, 2.238889},
				{-1.155889, -0.252, 3.064153, 0.9527778, -2.251667, 0.520695, 0.1744444, 0.710619, 2.288889},
				{-1.122222, -0.2566667, 3.268444, 0.8166667, -2.144444, 0.53865, 0.1744444, 0.72618, 2.338889},
			},
			{ // turbidity 6
				{-1.354444, -0.2466667, 2.186611, 1.802778, -3.069444, 0.448875, 0.2055556, 0.648375, 2.211111},
				{-1.319111, -0.2516, 2.3844, 1.638889, -2.946667, 0.46683, 0.2055556, 0.663936, 2.261111},
				{-1.283778, -0.2565333, 2.582189, 1.475, -2.823889, 0.484785, 0.2055556, 0.679497, 2.311111},
				{-1.248444, -0.2614667, 2.779978, 1.311111, -2.701111, 0.50274, 0.2055556, 0.695058, 2.361111},
				{-1.213111, -0.2664, 2.977767, 1.147222, -2.578333, 0.520695, 0.2055556, 0.710619, 2.411111},
				{-1.177778, -0.2713333, 3.175556, 0.9833333, -2.455556, 0.53865, 0.2055556, 0.72618, 2.461111},
			},
			{ // turbidity 7
				{-1.418333, -0.26, 2.126233, 2.108333, -3.458333, 0.448875, 0.2366667, 0.648375, 2.333333},
				{-1.381333, -0.2652, 2.31752, 1.916667, -3.32, 0.46683, 0.2366667, 0.663936, 2.383333},
				{-1.344333, -0.2704, 2.508807, 1.725, -3.181667, 0.484785, 0.2366667, 0.679497, 2.433333},
				{-1.307333, -0.2756, 2.700093, 1.533333, -3.043333, 0.50274, 0.2366667, 0.695058, 2.483333},
				{-1.270333, -0.2808, 2.89138, 1.341667, -2.905, 0.520695, 0.2366667, 0.710619, 2.533333},
				{-1.233333, -0.286, 3.082667, 1.15, -2.766667, 0.53865, 0.2366667, 0.72618, 2.583333},
			},
			{ // turbidity 8
				{-1.482222, -0.2733333, 2.065856, 2.413889, -3.847222, 0.448875, 0.2677778, 0.648375, 2.455556},
				{-1.443556, -0.2788, 2.25064, 2.194444, -3.693333, 0.46683, 0.2677778, 0.663936, 2.505556},
				{-1.404889, -0.2842667, 2.435424, 1.975, -3.539444, 0.484785, 0.2677778, 0.679497, 2.555556},
				{-1.366222, -0.2897333, 2.620209, 1.755556, -3.385556, 0.50274, 0.2677778, 0.695058, 2.605556},
				{-1.327556, -0.2952, 2.804993, 1.536111, -3.231667, 0.520695, 0.2677778, 0.710619, 2.655556},
				{-1.288889, -0.3006667, 2.989778, 1.316667, -3.077778, 0.53865, 0.2677778, 0.72618, 2.705556},
			},
			{ // turbidity 9
				{-1.546111, -0.2866667, 2.005478, 2.719444, -4.236111, 0.448875, 0.2988889, 0.648375, 2.577778},
				{-1.505778, -0.2924, 2.18376, 2.472222, -4.066667, 0.46683, 0.2988889, 0.663936, 2.627778},
				{-1.465444, -0.2981333, 2.362042, 2.225, -3.897222, 0.484785, 0.2988889, 0.679497, 2.677778},
				{-1.425111, -0.3038667, 2.540324, 1.977778, -3.727778, 0.50274, 0.2988889, 0.695058, 2.727778},
				{-1.384778, -0.3096, 2.718607, 1.730556, -3.558333, 0.520695, 0.2988889, 0.710619, 2.777778},
				{-1.344444, -0.3153333, 2.896889, 1.483333, -3.388889, 0.53865, 0.2988889, 0.72618, 2.827778},
			},
			{ // turbidity 10
				{-1.61, -0.3, 1.9451, 3.025, -4.625, 0.448875, 0.33, 0.648375, 2.7},
				{-1.568, -0.306, 2.11688, 2.75, -4.44, 0.46683, 0.33, 0.663936, 2.75},
				{-1.526, -0.312, 2.28866, 2.475, -4.255, 0.484785, 0.33, 0.679497, 2.8},
				{-1.484, -0.318, 2.46044, 2.2, -4.07, 0.50274, 0.33, 0.695058, 2.85},
				{-1.442, -0.324, 2.63222, 1.925, -3.885, 0.520695, 0.33, 0.710619, 2.9},
				{-1.4, -0.33, 2.804, 1.65, -3.7, 0.53865, 0.33, 0.72618, 2.95},
			},
		},
	},
	{ // b
		{ // albedo 0
			{ // turbidity 1
				{-1.01844, -0.18, 2.5675, 0.22, -1.125, 0.253125, 0.04, 0.455625, 1.6},
				{-0.991872, -0.1836, 2.844, 0.2, -1.08, 0.26325, 0.04, 0.46656, 1.65},
				{-0.965304, -0.1872, 3.1205, 0.18, -1.035, 0.273375, 0.04, 0.477495, 1.7},
				{-0.938736, -0.1908, 3.397, 0.16, -0.99, 0.2835, 0.04, 0.48843, 1.75},
				{-0.912168, -0.1944, 3.6735, 0.14, -0.945, 0.293625, 0.04, 0.499365, 1.8},
				{-0.8856, -0.198, 3.95, 0.12, -0.9, 0.30375, 0.04, 0.5103, 1.85},
			},
			{ // turbidity 2
				{-1.081307, -0.1933333, 2.488056, 0.4644444, -1.513889, 0.253125, 0.06488889, 0.455625, 1.722222},
				{-1.053099, -0.1972, 2.756, 0.4222222, -1.453333, 0.26325, 0.06488889, 0.46656, 1.772222},
				{-1.024891, -0.2010667, 3.023944, 0.38, -1.392778, 0.273375, 0.06488889, 0.477495, 1.822222},
				{-0.9966827, -0.2049333, 3.291889, 0.3377778, -1.332222, 0.2835, 0.06488889, 0.48843, 1.872222},
				{-0.9684747, -0.2088, 3.559833, 0.2955556, -1.271667, 0.293625, 0.06488889, 0.499365, 1.922222},
				{-0.9402667, -0.2126667, 3.827778, 0.2533333, -1.211111, 0.30375, 0.06488889, 0.5103, 1.972222},
			},
			{ // turbidity 3
				{-1.144173, -0.2066667, 2.408611, 0.7088889, -1.902778, 0.253125, 0.08977778, 0.455625, 1.844444},
				{-1.114325, -0.2108, 2.668, 0.6444444, -1.826667, 0.26325, 0.08977778, 0.46656, 1.894444},
				{-1.084477, -0.2149333, 2.927389, 0.58, -1.750556, 0.273375, 0.08977778, 0.477495, 1.944444},
				{-1.054629, -0.2190667, 3.186778, 0.5155556, -1.674444, 0.2835, 0.08977778, 0.48843, 1.994444},
				{-1.024781, -0.2232, 3.446167, 0.4511111, -1.598333, 0.293625, 0.08977778, 0.499365, 2.044444},
				{-0.9949333, -0.2273333, 3.705556, 0.3866667, -1.522222, 0.30375, 0.08977778, 0.5103, 2.094444},
			},
			{ // turbidity 4
				{-1.20704, -0.22, 2.329167, 0.9533333, -2.291667, 0.253125, 0.1146667, 0.455625, 1.966667},
				{-1.175552, -0.2244, 2.58, 0.8666667, -2.2, 0.26325, 0.1146667, 0.46656, 2.016667},
				{-1.144064, -0.2288, 2.830833, 0.78, -2.108333, 0.273375, 0.1146667, 0.477495, 2.066667},
				{-1.112576, -0.2332, 3.081667, 0.6933333, -2.016667, 0.2835, 0.1146667, 0.48843, 2.116667},
				{-1.081088, -0.2376, 3.3325, 0.6066667, -1.925, 0.293625, 0.1146667, 0.499365, 2.166667},
				{-1.0496, -0.242, 3.583333, 0.52, -1.833333, 0.30375, 0.1146667, 0.5103, 2.216667},
			},
			{ // turbidity 5
				{-1.269907, -0.2333333, 2.249722, 1.197778, -2.680556, 0.253125, 0.1395556, 0.455625, 2.088889},
				{-1.236779, -0.238, 2.492, 1.088889, -2.573333, 0.26325, 0.1395556, 0.46656, 2.138889},
				{-1.203651, -0.2426667, 2.734278, 0.98, -2.466111, 0.273375, 0.1395556, 0.477495, 2.188889},
				{-1.170523, -0.2473333, 2.976556, 0.8711111, -2.358889, 0.2835, 0.1395556, 0.48843, 2.238889},
				{-1.137395, -0.252, 3.218833, 0.7622222, -2.251667, 0.293625, 0.1395556, 0.499365, 2.288889},
				{-1.104267, -0.2566667, 3.461111, 0.6533333, -2.144444, 0.30375, 0.1395556, 0.5103, 2.338889},
			},
			{ // turbidity 6
				{-1.332773, -0.2466667, 2.170278, 1.442222, -3.069444, 0.253125, 0.1644444, 0.455625, 2.211111},
				{-1.298005, -0.2516, 2.404, 1.311111, -2.946667, 0.26325, 0.1644444, 0.46656, 2.261111},
				{-1.263237, -0.2565333, 2.637722, 1.18, -2.823889, 0.273375, 0.1644444, 0.477495, 2.311111},
				{-1.228469, -0.2614667, 2.871444, 1.048889, -2.701111, 0.2835, 0.1644444, 0.48843, 2.361111},
				{-1.193701, -0.2664, 3.105167, 0.9177778, -2.578333, 0.293625, 0.1644444, 0.499365, 2.411111},
				{-1.158933, -0.2713333, 3.338889, 0.7866667, -2.455556, 0.30375, 0.1644444, 0.5103, 2.461111},
			},
			{ // turbidity 7
				{-1.39564, -0.26, 2.090833, 1.686667, -3.458333, 0.253125, 0.1893333, 0.455625, 2.333333},
				{-1.359232, -0.2652, 2.316, 1.533333, -3.32, 0.26325, 0.1893333, 0.46656, 2.383333},
				{-1.322824, -0.2704, 2.541167, 1.38, -3.181667, 0.273375, 0.1893333, 0.477495, 2.433333},
				{-1.286416, -0.2756, 2.766333, 1.226667, -3.043333, 0.2835, 0.1893333, 0.48843, 2.483333},
				{-1.250008, -0.2808, 2.9915, 1.073333, -2.905, 0.293625, 0.1893333, 0.499365, 2.533333},
				{-1.2136, -0.286, 3.216667, 0.92, -2.766667, 0.30375, 0.1893333, 0.5103, 2.583333},
			},
			{ // turbidity 8
				{-1.458507, -0.2733333, 2.011389, 1.931111, -3.847222, 0.253125, 0.2142222, 0.455625, 2.455556},
				{-1.420459, -0.2788, 2.228, 1.755556, -3.693333, 0.26325, 0.2142222, 0.46656, 2.505556},
				{-1.382411, -0.2842667, 2.444611, 1.58, -3.539444, 0.273375, 0.2142222, 0.477495, 2.555556},
				{-1.344363, -0.2897333, 2.661222, 1.404444, -3.385556, 0.2835, 0.2142222, 0.48843, 2.605556},
				{-1.306315, -0.2952, 2.877833, 1.228889, -3.231667, 0.293625, 0.2142222, 0.499365, 2.655556},
				{-1.268267, -0.3006667, 3.094444, 1.053333, -3.077778, 0.30375, 0.2142222, 0.5103, 2.705556},
			},
			{ // turbidity 9
				{-1.521373, -0.2866667, 1.931944, 2.175556, -4.236111, 0.253125, 0.2391111, 0.455625, 2.577778},
				{-1.481685, -0.2924, 2.14, 1.977778, -4.066667, 0.26325, 0.2391111, 0.46656, 2.627778},
				{-1.441997, -0.2981333, 2.348056, 1.78, -3.897222, 0.273375, 0.2391111, 0.477495, 2.677778},
				{-1.402309, -0.3038667, 2.556111, 1.582222, -3.727778, 0.2835, 0.2391111, 0.48843, 2.727778},
				{-1.362621, -0.3096, 2.764167, 1.384444, -3.558333, 0.293625, 0.2391111, 0.499365, 2.777778},
				{-1.322933, -0.3153333, 2.972222, 1.186667, -3.388889, 0.30375, 0.2391111, 0.5103, 2.827778},
			},
			{ // turbidity 10
				{-1.58424, -0.3, 1.8525, 2.42, -4.625, 0.253125, 0.264, 0.455625, 2.7},
				{-1.542912, -0.306, 2.052, 2.2, -4.44, 0.26325, 0.264, 0.46656, 2.75},
				{-1.501584, -0.312, 2.2515, 1.98, -4.255, 0.273375, 0.264, 0.477495, 2.8},
				{-1.460256, -0.318, 2.451, 1.76, -4.07, 0.2835, 0.264, 0.48843, 2.85},
				{-1.418928, -0.324, 2.6505, 1.54, -3.885, 0.293625, 0.264, 0.499365, 2.9},
				{-1.3776, -0.33, 2.85, 1.32, -3.7, 0.30375, 0.264, 0.5103, 2.95},
			},
		},
		{ // albedo 1
			{ // turbidity 1
				{-1.01844, -0.18, 2.9175, 0.22, -1.125, 0.455625, 0.04, 0.658125, 1.6},
				{-0.991872, -0.1836, 3.194, 0.2, -1.08, 0.47385, 0.04, 0.67392, 1.65},
				{-0.965304, -0.1872, 3.4705, 0.18, -1.035, 0.492075, 0.04, 0.689715, 1.7},
				{-0.938736, -0.1908, 3.747, 0.16, -0.99, 0.5103, 0.04, 0.70551, 1.75},
				{-0.912168, -0.1944, 4.0235, 0.14, -0.945, 0.528525, 0.04, 0.721305, 1.8},
				{-0.8856, -0.198, 4.3, 0.12, -0.9, 0.54675, 0.04, 0.7371, 1.85},
			},
			{ // turbidity 2
				{-1.081307, -0.1933333, 2.838056, 0.4644444, -1.513889, 0.455625, 0.06488889, 0.658125, 1.722222},
				{-1.053099, -0.1972, 3.106, 0.4222222, -1.453333, 0.47385, 0.06488889, 0.67392, 1.772222},
				{-1.024891, -0.2010667, 3.373944, 0.38, -1.392778, 0.492075, 0.06488889, 0.689715, 1.822222},
				{-0.9966827, -0.2049333, 3.641889, 0.3377778, -1.332222, 0.5103, 0.06488889, 0.70551, 1.872222},
				{-0.9684747, -0.2088, 3.909833, 0.2955556, -1.271667, 0.528525, 0.06488889, 0.721305, 1.922222},
				{-0.9402667, -0.2126667, 4.177778, 0.2533333, -1.211111, 0.54675, 0.06488889, 0.7371, 1.972222},
			},
			{ // turbidity 3
				{-1.144173, -0.2066667, 2.758611, 0.7088889, -1.902778, 0.455625, 0.08977778, 0.658125, 1.844444},
				{-1.114325, -0.2108, 3.018, 0.6444444, -1.826667, 0.47385, 0.08977778, 0.67392, 1.894444},
				{-1.084477, -0.2149333, 3.277389, 0.58, -1.750556, 0.492075, 0.08977778, 0.689715, 1.944444},
				{-1.054629, -0.2190667, 3.536778, 0.5155556, -1.674444, 0.5103, 0.08977778, 0.70551, 1.994444},
				{-1.024781, -0.2232, 3.796167, 0.4511111, -1.598333, 0.528525, 0.08977778, 0.721305, 2.044444},
				{-0.9949333, -0.2273333, 4.055556, 0.3866667, -1.522222, 0.54675, 0.08977778, 0.7371, 2.094444},
			},
			{ // turbidity 4
				{-1.20704, -0.22, 2.679167, 0.9533333, -2.291667, 0.455625, 0.1146667, 0.658125, 1.966667},
				{-1.175552, -0.2244, 2.93, 0.8666667, -2.2, 0.47385, 0.1146667, 0.67392, 2.016667},
				{-1.144064, -0.2288, 3.180833, 0.78, -2.108333, 0.492075, 0.1146667, 0.689715, 2.066667},
				{-1.112576, -0.2332, 3.431667, 0.6933333, -2.016667, 0.5103, 0.1146667, 0.70551, 2.116667},
				{-1.081088, -0.2376, 3.6825, 0.6066667, -1.925, 0.528525, 0.1146667, 0.721305, 2.166667},
				{-1.0496, -0.242, 3.933333, 0.52, -1.833333, 0.54675, 0.1146667, 0.7371, 2.216667},
			},
			{ // turbidity 5
				{-1.269907, -0.2333333, 2.599722, 1.197778, -2.680556, 0.455625, 0.1395556, 0.658125, 2.088889},
				{-1.236779, -0.238, 2.842, 1.088889, -2.573333, 0.47385, 0.1395556, 0.67392, 2.138889},
				{-1.203651, -0.2426667, 3.084278, 0.98, -2.466111, 0.492075, 0.1395556, 0.689715, 2.188889},
				{-1.170523, -0.2473333, 3.326556, 0.8711111, -2.358889, 0.5103, 0.1395556, 0.70551, 2.238889},
				{-1.137395, -0.252, 3.568833, 0.7622222, -2.251667, 0.528525, 0.1395556, 0.721305, 2.288889},
				{-1.104267, -0.2566667, 3.811111, 0.6533333, -2.144444, 0.54675, 0.1395556, 0.7371, 2.338889},
			},
			{ // turbidity 6
				{-1.332773, -0.2466667, 2.520278, 1.442222, -3.069444, 0.455625, 0.1644444, 0.658125, 2.211111},
				{-1.298005, -0.2516, 2.754, 1.311111, -2.946667, 0.47385, 0.1644444, 0.67392, 2.261111},
				{-1.263237, -0.2565333, 2.987722, 1.18, -2.823889, 0.492075, 0.1644444, 0.689715, 2.311111},
				{-1.228469, -0.2614667, 3.221444, 1.048889, -2.701111, 0.5103, 0.1644444, 0.70551, 2.361111},
				{-1.193701, -0.2664, 3.455167, 0.9177778, -2.578333, 0.528525, 0.1644444, 0.721305, 2.411111},
				{-1.158933, -0.2713333, 3.688889, 0.7866667, -2.455556, 0.54675, 0.1644444, 0.7371, 2.461111},
			},
			{ // turbidity 7
				{-1.39564, -0.26, 2.440833, 1.686667, -3.458333, 0.455625, 0.1893333, 0.658125, 2.333333},
				{-1.359232, -0.2652, 2.666, 1.533333, -3.32, 0.47385, 0.1893333, 0.67392, 2.383333},
				{-1.322824, -0.2704, 2.891167, 1.38, -3.181667, 0.492075, 0.1893333, 0.689715, 2.433333},
				{-1.286416, -0.2756, 3.116333, 1.226667, -3.043333, 0.5103, 0.1893333, 0.70551, 2.483333},
				{-1.250008, -0.2808, 3.3415, 1.073333, -2.905, 0.528525, 0.1893333, 0.721305, 2.533333},
				{-1.2136, -0.286, 3.566667, 0.92, -2.766667, 0.54675, 0.1893333, 0.7371, 2.583333},
			},
			{ // turbidity 8
				{-1.458507, -0.2733333, 2.361389, 1.931111, -3.847222, 0.455625, 0.2142222, 0.658125, 2.455556},
				{-1.420459, -0.2788, 2.578, 1.755556, -3.693333, 0.47385, 0.2142222, 0.67392, 2.505556},
				{-1.382411, -0.2842667, 2.794611, 1.58, -3.539444, 0.492075, 0.2142222, 0.689715, 2.555556},
				{-1.344363, -0.2897333, 3.011222, 1.404444, -3.385556, 0.5103, 0.2142222, 0.70551, 2.605556},
				{-1.306315, -0.2952, 3.227833, 1.228889, -3.231667, 0.528525, 0.2142222, 0.721305, 2.655556},
				{-1.268267, -0.3006667, 3.444444, 1.053333, -3.077778, 0.54675, 0.2142222, 0.7371, 2.705556},
			},
			{ // turbidity 9
				{-1.521373, -0.2866667, 2.281944, 2.175556, -4.236111, 0.455625, 0.2391111, 0.658125, 2.577778},
				{-1.481685, -0.2924, 2.49, 1.977778, -4.066667, 0.47385, 0.2391111, 0.67392, 2.627778},
				{-1.441997, -0.2981333, 2.698056, 1.78, -3.897222, 0.492075, 0.2391111, 0.689715, 2.677778},
				{-1.402309, -0.3038667, 2.906111, 1.582222, -3.727778, 0.5103, 0.2391111, 0.70551, 2.727778},
				{-1.362621, -0.3096, 3.114167, 1.384444, -3.558333, 0.528525, 0.2391111, 0.721305, 2.777778},
				{-1.322933, -0.3153333, 3.322222, 1.186667, -3.388889, 0.54675, 0.2391111, 0.7371, 2.827778},
			},
			{ // turbidity 10
				{-1.58424, -0.3, 2.2025, 2.42, -4.625, 0.455625, 0.264, 0.658125, 2.7},
				{-1.542912, -0.306, 2.402, 2.2, -4.44, 0.47385, 0.264, 0.67392, 2.75},
				{-1.501584, -0.312, 2.6015, 1.98, -4.255, 0.492075, 0.264, 0.689715, 2.8},
				{-1.460256, -0.318, 2.801, 1.76, -4.07, 0.5103, 0.264, 0.70551, 2.85},
				{-1.418928, -0.324, 3.0005, 1.54, -3.885, 0.528525, 0.264, 0.721305, 2.9},
				{-1.3776, -0.33, 3.2, 1.32, -3.7, 0.54675, 0.264, 0.7371, 2.95},
			},
		},
	},
}

// datasetRGBRad is indexed [channel][albedo][turbidity-1][controlPoint].
var datasetRGBRad = [3][2][10][6]float32{
	{ // r
		{ // albedo 0
			{6.875, 8.322, 9.373, 10.028, 10.287, 10.15},
			{6.684028, 8.090833, 9.112639, 9.749444, 10.00125, 9.868056},
			{6.493056, 7.859667, 8.852278, 9.470889, 9.7155, 9.586111},
			{6.302083, 7.6285, 8.591917, 9.192333, 9.42975, 9.304167},
			{6.111111, 7.397333, 8.331556, 8.913778, 9.144, 9.022222},
			{5.920139, 7.166167, 8.071194, 8.635222, 8.85825, 8.740278},
			{5.729167, 6.935, 7.810833, 8.356667, 8.5725, 8.458333},
			{5.538194, 6.703833, 7.550472, 8.078111, 8.28675, 8.176389},
			{5.347222, 6.472667, 7.290111, 7.799556, 8.001, 7.894444},
			{5.15625, 6.2415, 7.02975, 7.521, 7.71525, 7.6125},
		},
		{ // albedo 1
			{7.5625, 9.1542, 10.3103, 11.0308, 11.3157, 11.165},
			{7.352431, 8.899917, 10.0239, 10.72439, 11.00137, 10.85486},
			{7.142361, 8.645633, 9.737506, 10.41798, 10.68705, 10.54472},
			{6.932292, 8.39135, 9.451108, 10.11157, 10.37272, 10.23458},
			{6.722222, 8.137067, 9.164711, 9.805156, 10.0584, 9.924444},
			{6.512153, 7.882783, 8.878314, 9.498744, 9.744075, 9.614306},
			{6.302083, 7.6285, 8.591917, 9.192333, 9.42975, 9.304167},
			{6.092014, 7.374217, 8.305519, 8.885922, 9.115425, 8.994028},
			{5.881944, 7.119933, 8.019122, 8.579511, 8.8011, 8.683889},
			{5.671875, 6.86565, 7.732725, 8.2731, 8.486775, 8.37375},
		},
	},
	{ // g
		{ // albedo 0
			{5.5, 7.227, 8.918, 10.573, 12.192, 13.775},
			{5.347222, 7.02625, 8.670278, 10.27931, 11.85333, 13.39236},
			{5.194444, 6.8255, 8.422556, 9.985611, 11.51467, 13.00972},
			{5.041667, 6.62475, 8.174833, 9.691917, 11.176, 12.62708},
			{4.888889, 6.424, 7.927111, 9.398222, 10.83733, 12.24444},
			{4.736111, 6.22325, 7.679389, 9.104528, 10.49867, 11.86181},
			{4.583333, 6.0225, 7.431667, 8.810833, 10.16, 11.47917},
			{4.430556, 5.82175, 7.183944, 8.517139, 9.821333, 11.09653},
			{4.277778, 5.621, 6.936222, 8.223444, 9.482667, 10.71389},
			{4.125, 5.42025, 6.6885, 7.92975, 9.144, 10.33125},
		},
		{ // albedo 1
			{6.05, 7.9497, 9.8098, 11.6303, 13.4112, 15.1525},
			{5.881944, 7.728875, 9.537306, 11.30724, 13.03867, 14.7316},
			{5.713889, 7.50805, 9.264811, 10.98417, 12.66613, 14.31069},
			{5.545833, 7.287225, 8.992317, 10.66111, 12.2936, 13.88979},
			{5.377778, 7.0664, 8.719822, 10.33804, 11.92107, 13.46889},
			{5.209722, 6.845575, 8.447328, 10.01498, 11.54853, 13.04799},
			{5.041667, 6.62475, 8.174833, 9.691917, 11.176, 12.62708},
			{4.873611, 6.403925, 7.902339, 9.368853, 10.80347, 12.20618},
			{4.705556, 6.1831, 7.629844, 9.045789, 10.43093, 11.78528},
			{4.5375, 5.962275, 7.35735, 8.722725, 10.0584, 11.36437},
		},
	},
	{ // b
		{ // albedo 0
			{4.4, 6.497, 8.918, 11.663, 14.732, 18.125},
			{4.277778, 6.316528, 8.670278, 11.33903, 14.32278, 17.62153},
			{4.155556, 6.136056, 8.422556, 11.01506, 13.91356, 17.11806},
			{4.033333, 5.955583, 8.174833, 10.69108, 13.50433, 16.61458},
			{3.911111, 5.775111, 7.927111, 10.36711, 13.09511, 16.11111},
			{3.788889, 5.594639, 7.679389, 10.04314, 12.68589, 15.60764},
			{3.666667, 5.414167, 7.431667, 9.719167, 12.27667, 15.10417},
			{3.544444, 5.233694, 7.183944, 9.395194, 11.86744, 14.60069},
			{3.422222, 5.053222, 6.936222, 9.071222, 11.45822, 14.09722},
			{3.3, 4.87275, 6.6885, 8.74725, 11.049, 13.59375},
		},
		{ // albedo 1
			{4.84, 7.1467, 9.8098, 12.8293, 16.2052, 19.9375},
			{4.705556, 6.948181, 9.537306, 12.47293, 15.75506, 19.38368},
			{4.571111, 6.749661, 9.264811, 12.11656, 15.30491, 18.82986},
			{4.436667, 6.551142, 8.992317, 11.76019, 14.85477, 18.27604},
			{4.302222, 6.352622, 8.719822, 11.40382, 14.40462, 17.72222},
			{4.167778, 6.154103, 8.447328, 11.04745, 13.95448, 17.1684},
			{4.033333, 5.955583, 8.174833, 10.69108, 13.50433, 16.61458},
			{3.898889, 5.757064, 7.902339, 10.33471, 13.05419, 16.06076},
			{3.764444, 5.558544, 7.629844, 9.978344, 12.60404, 15.50694},
			{3.63, 5.360025, 7.35735, 9.621975, 12.1539, 14.95313},
		},
	},
}
