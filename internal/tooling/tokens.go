package tooling

// vocabulary returns the raw TI-Basic token list in catalog order. The list
// follows the TI-84 Plus CE token catalog and intentionally tolerates
// duplicate labels between groups (e.g. toString( appears under both I/O
// commands and string functions); dedupeEntries keeps the first occurrence.
func vocabulary() []CompletionEntry {
	var entries []CompletionEntry
	add := func(kind CompletionKind, labels ...string) {
		for _, label := range labels {
			entries = append(entries, CompletionEntry{Label: label, Kind: kind})
		}
	}

	// Control flow and program commands
	add(CompletionKindKeyword,
		"If", "Then", "Else", "For(", "While", "Repeat", "End",
		"Pause", "Lbl", "Goto", "IS>(", "DS<(", "Menu(", "prgm",
		"Return", "Stop", "DelVar", "GraphStyle(", "GraphColor(",
		"OpenLib(", "ExecLib", "Wait",
	)

	// Input and output
	add(CompletionKindKeyword,
		"Input", "Prompt", "Disp", "DispGraph", "DispTable", "Output(",
		"getKey", "ClrHome", "ClrTable", "GetCalc(", "Get(", "Send(",
		"toString(", "eval(",
	)

	// Logic operators
	add(CompletionKindKeyword,
		"and", "or", "xor", "not(",
	)

	// Mode settings
	add(CompletionKindKeyword,
		"Radian", "Degree", "Normal", "Sci", "Eng", "Float", "Fix",
		"Func", "Param", "Polar", "Seq", "Connected", "Dot",
		"Sequential", "Simul", "Real", "Full", "Horiz", "G-T",
		"a+bi", "re^θi",
	)

	// Graph format and zoom
	add(CompletionKindKeyword,
		"AxesOn", "AxesOff", "GridDot", "GridLine", "GridOff",
		"LabelOn", "LabelOff", "CoordOn", "CoordOff", "ExprOn", "ExprOff",
		"ZBox", "ZoomIn", "ZoomOut", "ZSquare", "ZStandard", "ZTrig",
		"ZDecimal", "ZInteger", "ZoomStat", "ZoomFit", "ZoomSto",
		"ZoomRcl", "ZPrevious", "ZQuadrant1", "ZFrac1/2", "Trace",
	)

	// Drawing
	add(CompletionKindKeyword,
		"ClrDraw", "Line(", "Horizontal", "Vertical", "Tangent(",
		"DrawF", "Shade(", "DrawInv", "Circle(", "Text(", "TextColor(",
		"Pt-On(", "Pt-Off(", "Pt-Change(", "Pxl-On(", "Pxl-Off(",
		"Pxl-Change(", "pxl-Test(", "StorePic", "RecallPic",
		"StoreGDB", "RecallGDB", "BackgroundOn", "BackgroundOff",
		"BorderColor", "DetectAsymOn", "DetectAsymOff",
	)

	// Statistics and lists
	add(CompletionKindKeyword,
		"Plot1(", "Plot2(", "Plot3(", "PlotsOn", "PlotsOff",
		"FnOn", "FnOff", "ClrList", "ClrAllLists", "SetUpEditor",
		"SortA(", "SortD(", "Fill(",
		"1-Var Stats", "2-Var Stats", "Med-Med",
		"LinReg(ax+b)", "LinReg(a+bx)", "QuadReg", "CubicReg",
		"QuartReg", "LnReg", "ExpReg", "PwrReg", "Logistic", "SinReg",
		"Manual-Fit",
	)

	// Conversions
	add(CompletionKindKeyword,
		"▶Frac", "▶Dec", "▶DMS", "▶Rect", "▶Polar", "▶Nom(", "▶Eff(",
	)

	// Trigonometry
	add(CompletionKindFunction,
		"sin(", "cos(", "tan(", "sin⁻¹(", "cos⁻¹(", "tan⁻¹(",
		"sinh(", "cosh(", "tanh(", "sinh⁻¹(", "cosh⁻¹(", "tanh⁻¹(",
	)

	// Exponential, logarithmic and roots
	add(CompletionKindFunction,
		"ln(", "log(", "logBASE(", "e^(", "10^(", "√(", "³√(", "×√",
	)

	// Numeric
	add(CompletionKindFunction,
		"abs(", "round(", "iPart(", "fPart(", "int(",
		"min(", "max(", "lcm(", "gcd(", "remainder(",
	)

	// Probability
	add(CompletionKindFunction,
		"rand", "randInt(", "randM(", "randNorm(", "randBin(",
		"randIntNoRep(", "nPr", "nCr",
	)

	// Lists
	add(CompletionKindFunction,
		"mean(", "median(", "sum(", "prod(", "stdDev(", "variance(",
		"seq(", "cumSum(", "ΔList(", "augment(", "dim(",
	)

	// Strings
	add(CompletionKindFunction,
		"length(", "sub(", "inString(", "expr(", "toString(",
	)

	// Matrices
	add(CompletionKindFunction,
		"det(", "identity(", "Matr▶list(", "List▶matr(", "ref(", "rref(",
		"rowSwap(", "row+(", "*row(", "*row+(",
	)

	// Complex numbers
	add(CompletionKindFunction,
		"conj(", "real(", "imag(", "angle(", "not(",
	)

	// Calculus and solving
	add(CompletionKindFunction,
		"nDeriv(", "fnInt(", "fMin(", "fMax(", "solve(",
	)

	// Distributions
	add(CompletionKindFunction,
		"normalpdf(", "normalcdf(", "invNorm(", "invT(",
		"tpdf(", "tcdf(", "χ²pdf(", "χ²cdf(", "Fpdf(", "Fcdf(",
		"binompdf(", "binomcdf(", "poissonpdf(", "poissoncdf(",
		"geometpdf(", "geometcdf(",
	)

	// Coordinate conversions
	add(CompletionKindFunction,
		"P▶Rx(", "P▶Ry(", "R▶Pr(", "R▶Pθ(",
	)

	// Clock and timers
	add(CompletionKindFunction,
		"dayOfWk(", "getDate", "getTime", "startTmr", "checkTmr(",
		"getDtStr(", "getTmStr(",
	)

	// Color constants (TI-84 Plus CE)
	add(CompletionKindColor,
		"BLUE", "RED", "BLACK", "MAGENTA", "GREEN", "ORANGE", "BROWN",
		"NAVY", "LTBLUE", "YELLOW", "WHITE", "LTGRAY", "MEDGRAY",
		"GRAY", "DARKGRAY",
	)

	// Constants and sequence variables
	add(CompletionKindVariable,
		"Ans", "π", "e", "θ", "n", "u", "v", "w", "i",
	)

	// String variables
	add(CompletionKindVariable,
		"Str0", "Str1", "Str2", "Str3", "Str4",
		"Str5", "Str6", "Str7", "Str8", "Str9",
	)

	// List variables
	add(CompletionKindVariable,
		"L1", "L2", "L3", "L4", "L5", "L6",
	)

	// Matrix variables
	add(CompletionKindVariable,
		"[A]", "[B]", "[C]", "[D]", "[E]",
		"[F]", "[G]", "[H]", "[I]", "[J]",
	)

	// Function variables
	add(CompletionKindVariable,
		"Y0", "Y1", "Y2", "Y3", "Y4", "Y5", "Y6", "Y7", "Y8", "Y9",
		"X1T", "X2T", "X3T", "X4T", "X5T", "X6T",
		"Y1T", "Y2T", "Y3T", "Y4T", "Y5T", "Y6T",
		"r1", "r2", "r3", "r4", "r5", "r6",
	)

	// Window variables
	add(CompletionKindVariable,
		"Xmin", "Xmax", "Xscl", "Ymin", "Ymax", "Yscl", "ΔX", "ΔY",
		"XFact", "YFact", "Tmin", "Tmax", "Tstep",
		"θmin", "θmax", "θstep", "nMin", "nMax",
		"PlotStart", "PlotStep",
	)

	// Pictures, graph databases and images
	add(CompletionKindVariable,
		"Pic0", "Pic1", "Pic2", "Pic3", "Pic4",
		"Pic5", "Pic6", "Pic7", "Pic8", "Pic9",
		"GDB0", "GDB1", "GDB2", "GDB3", "GDB4",
		"GDB5", "GDB6", "GDB7", "GDB8", "GDB9",
		"Image0", "Image1", "Image2", "Image3", "Image4",
		"Image5", "Image6", "Image7", "Image8", "Image9",
	)

	return entries
}
