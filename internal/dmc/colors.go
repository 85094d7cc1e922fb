package dmc

// The DMC thread line, code/name/hex. Order matches the published colour card.
var table = []Color{
	{Code: "B5200", Name: "Snow White", Hex: "#FFFFFF"},
	{Code: "White", Name: "White", Hex: "#FCFCFC"},
	{Code: "Ecru", Name: "Ecru", Hex: "#F0EADA"},
	{Code: "150", Name: "Dusty Rose - Ultra Very Dark", Hex: "#AB0249"},
	{Code: "151", Name: "Dusty Rose - Very Light", Hex: "#F0CED4"},
	{Code: "152", Name: "Shell Pink - Medium Light", Hex: "#E2A099"},
	{Code: "153", Name: "Violet - Very Light", Hex: "#E6CDD9"},
	{Code: "154", Name: "Grape - Very Dark", Hex: "#572433"},
	{Code: "155", Name: "Blue Violet - Medium Dark", Hex: "#9891B6"},
	{Code: "156", Name: "Blue Violet - Medium Light", Hex: "#A3A7C5"},
	{Code: "157", Name: "Cornflower Blue - Very Light", Hex: "#BBC3D9"},
	{Code: "158", Name: "Cornflower Blue - Medium Very Dark", Hex: "#4C526E"},
	{Code: "159", Name: "Blue Gray - Light", Hex: "#C7C9D6"},
	{Code: "160", Name: "Blue Gray - Medium", Hex: "#999FB3"},
	{Code: "161", Name: "Blue Gray", Hex: "#7880A0"},
	{Code: "162", Name: "Blue - Ultra Very Light", Hex: "#DBE9F4"},
	{Code: "163", Name: "Celadon Green - Medium", Hex: "#4D9D7A"},
	{Code: "164", Name: "Forest Green - Light", Hex: "#C8DEC2"},
	{Code: "165", Name: "Moss Green - Very Light", Hex: "#EFF5A7"},
	{Code: "166", Name: "Moss Green - Medium Light", Hex: "#C0C840"},
	{Code: "167", Name: "Yellow Beige - Very Dark", Hex: "#A77B4B"},
	{Code: "168", Name: "Pewter - Very Light", Hex: "#D1D1D1"},
	{Code: "169", Name: "Pewter - Light", Hex: "#848484"},
	{Code: "208", Name: "Lavender - Very Dark", Hex: "#835898"},
	{Code: "209", Name: "Lavender - Dark", Hex: "#A374AC"},
	{Code: "210", Name: "Lavender - Medium", Hex: "#C59FC9"},
	{Code: "211", Name: "Lavender - Light", Hex: "#E3C7E4"},
	{Code: "221", Name: "Shell Pink - Very Dark", Hex: "#883C3E"},
	{Code: "223", Name: "Shell Pink - Light", Hex: "#CC8E8E"},
	{Code: "224", Name: "Shell Pink - Very Light", Hex: "#EBBBBB"},
	{Code: "225", Name: "Shell Pink - Ultra Very Light", Hex: "#FFDFD9"},
	{Code: "300", Name: "Mahogany - Very Dark", Hex: "#6F2F00"},
	{Code: "301", Name: "Mahogany - Medium", Hex: "#B35F2B"},
	{Code: "304", Name: "Christmas Red - Medium", Hex: "#B70028"},
	{Code: "307", Name: "Lemon", Hex: "#FDED54"},
	{Code: "309", Name: "Rose - Dark", Hex: "#BA304C"},
	{Code: "310", Name: "Black", Hex: "#000000"},
	{Code: "311", Name: "Navy Blue - Medium", Hex: "#1C5066"},
	{Code: "312", Name: "Navy Blue - Light", Hex: "#365E7D"},
	{Code: "315", Name: "Antique Mauve - Medium Dark", Hex: "#814854"},
	{Code: "316", Name: "Antique Mauve - Medium", Hex: "#B87382"},
	{Code: "317", Name: "Pewter Gray", Hex: "#6C6C6C"},
	{Code: "318", Name: "Steel Gray - Light", Hex: "#ABABAB"},
	{Code: "319", Name: "Pistachio Green - Very Dark", Hex: "#205E3B"},
	{Code: "320", Name: "Pistachio Green - Medium", Hex: "#69A569"},
	{Code: "321", Name: "Christmas Red", Hex: "#C72A35"},
	{Code: "322", Name: "Navy Blue - Very Light", Hex: "#5A879E"},
	{Code: "326", Name: "Rose - Very Dark", Hex: "#B33850"},
	{Code: "327", Name: "Violet - Dark", Hex: "#633672"},
	{Code: "333", Name: "Blue Violet - Very Dark", Hex: "#5C5478"},
	{Code: "334", Name: "Baby Blue - Medium", Hex: "#739FC3"},
	{Code: "335", Name: "Rose", Hex: "#EE546E"},
	{Code: "336", Name: "Navy Blue", Hex: "#253B73"},
	{Code: "340", Name: "Blue Violet - Medium", Hex: "#ADA7C7"},
	{Code: "341", Name: "Blue Violet - Light", Hex: "#B7B5D0"},
	{Code: "347", Name: "Salmon - Very Dark", Hex: "#BF2D2D"},
	{Code: "349", Name: "Coral - Dark", Hex: "#D21035"},
	{Code: "350", Name: "Coral - Medium", Hex: "#E04848"},
	{Code: "351", Name: "Coral", Hex: "#E96A67"},
	{Code: "352", Name: "Coral - Light", Hex: "#FD9C97"},
	{Code: "353", Name: "Peach", Hex: "#FED7CC"},
	{Code: "355", Name: "Terra Cotta - Dark", Hex: "#984236"},
	{Code: "356", Name: "Terra Cotta - Medium", Hex: "#C56A5A"},
	{Code: "367", Name: "Pistachio Green - Dark", Hex: "#617E5A"},
	{Code: "368", Name: "Pistachio Green - Light", Hex: "#A6D0A1"},
	{Code: "369", Name: "Pistachio Green - Very Light", Hex: "#D6E8D6"},
	{Code: "370", Name: "Mustard - Medium", Hex: "#B89058"},
	{Code: "371", Name: "Mustard", Hex: "#BF9A64"},
	{Code: "372", Name: "Mustard - Light", Hex: "#CCA86D"},
	{Code: "400", Name: "Mahogany - Dark", Hex: "#8F4620"},
	{Code: "402", Name: "Mahogany - Very Light", Hex: "#F7A777"},
	{Code: "407", Name: "Desert Sand - Dark", Hex: "#B37E69"},
	{Code: "413", Name: "Pewter Gray - Dark", Hex: "#5B5B5B"},
	{Code: "414", Name: "Steel Gray - Dark", Hex: "#8C8C8C"},
	{Code: "415", Name: "Pearl Gray", Hex: "#C9C9C9"},
	{Code: "420", Name: "Hazelnut Brown - Dark", Hex: "#A06A30"},
	{Code: "422", Name: "Hazelnut Brown - Light", Hex: "#C6976A"},
	{Code: "433", Name: "Brown - Medium", Hex: "#7A4A1F"},
	{Code: "434", Name: "Brown - Light", Hex: "#98592F"},
	{Code: "435", Name: "Brown - Very Light", Hex: "#B9743E"},
	{Code: "436", Name: "Tan", Hex: "#CB8B4E"},
	{Code: "437", Name: "Tan - Light", Hex: "#E4BC80"},
	{Code: "444", Name: "Lemon - Dark", Hex: "#FFD600"},
	{Code: "445", Name: "Lemon - Light", Hex: "#FFFB91"},
	{Code: "451", Name: "Shell Gray - Dark", Hex: "#908482"},
	{Code: "452", Name: "Shell Gray - Medium", Hex: "#B8ABAB"},
	{Code: "453", Name: "Shell Gray - Light", Hex: "#CEC6C6"},
	{Code: "469", Name: "Avocado Green", Hex: "#728A3B"},
	{Code: "470", Name: "Avocado Green - Light", Hex: "#94AB4E"},
	{Code: "471", Name: "Avocado Green - Very Light", Hex: "#AEC151"},
	{Code: "472", Name: "Avocado Green - Ultra Light", Hex: "#D8EEA7"},
	{Code: "498", Name: "Christmas Red - Dark", Hex: "#A7132C"},
	{Code: "500", Name: "Blue Green - Very Dark", Hex: "#043F2F"},
	{Code: "501", Name: "Blue Green - Dark", Hex: "#3B6F5D"},
	{Code: "502", Name: "Blue Green", Hex: "#5B9680"},
	{Code: "503", Name: "Blue Green - Medium", Hex: "#7EB5A1"},
	{Code: "504", Name: "Blue Green - Very Light", Hex: "#CADEC9"},
	{Code: "505", Name: "Jade Green", Hex: "#338262"},
	{Code: "517", Name: "Wedgwood - Dark", Hex: "#3B7895"},
	{Code: "518", Name: "Wedgwood - Light", Hex: "#4F93A7"},
	{Code: "519", Name: "Sky Blue", Hex: "#7EB5D5"},
	{Code: "520", Name: "Fern Green - Dark", Hex: "#666B4C"},
	{Code: "522", Name: "Fern Green", Hex: "#969E7E"},
	{Code: "523", Name: "Fern Green - Light", Hex: "#ABB393"},
	{Code: "524", Name: "Fern Green - Very Light", Hex: "#C4CBA6"},
	{Code: "535", Name: "Ash Gray - Very Light", Hex: "#636363"},
	{Code: "543", Name: "Beige Brown - Ultra Very Light", Hex: "#F2DFD1"},
	{Code: "550", Name: "Violet - Very Dark", Hex: "#5C2058"},
	{Code: "552", Name: "Violet - Medium", Hex: "#803A7A"},
	{Code: "553", Name: "Violet", Hex: "#A3639E"},
	{Code: "554", Name: "Violet - Light", Hex: "#DB9FDA"},
	{Code: "561", Name: "Jade - Very Dark", Hex: "#2D6E5C"},
	{Code: "562", Name: "Jade - Medium", Hex: "#53A17E"},
	{Code: "563", Name: "Jade - Light", Hex: "#8FCBAA"},
	{Code: "564", Name: "Jade - Very Light", Hex: "#A8DBC3"},
	{Code: "580", Name: "Moss Green - Dark", Hex: "#888C2F"},
	{Code: "581", Name: "Moss Green", Hex: "#A7AB3C"},
	{Code: "597", Name: "Turquoise", Hex: "#5BB4C0"},
	{Code: "598", Name: "Turquoise - Light", Hex: "#90D3D8"},
	{Code: "600", Name: "Cranberry - Very Dark", Hex: "#CD2E5F"},
	{Code: "601", Name: "Cranberry - Dark", Hex: "#D13570"},
	{Code: "602", Name: "Cranberry - Medium", Hex: "#E24777"},
	{Code: "603", Name: "Cranberry", Hex: "#FF7398"},
	{Code: "604", Name: "Cranberry - Light", Hex: "#FF9DB6"},
	{Code: "605", Name: "Cranberry - Very Light", Hex: "#FFC1CE"},
	{Code: "606", Name: "Bright Orange-Red", Hex: "#FA3909"},
	{Code: "608", Name: "Bright Orange", Hex: "#FD6631"},
	{Code: "610", Name: "Drab Brown - Dark", Hex: "#796140"},
	{Code: "611", Name: "Drab Brown", Hex: "#967654"},
	{Code: "612", Name: "Drab Brown - Light", Hex: "#BC9E6E"},
	{Code: "613", Name: "Drab Brown - Very Light", Hex: "#DCC9A7"},
	{Code: "632", Name: "Desert Sand - Ultra Very Dark", Hex: "#874530"},
	{Code: "640", Name: "Beige Gray - Very Dark", Hex: "#856F5E"},
	{Code: "642", Name: "Beige Gray - Dark", Hex: "#A69586"},
	{Code: "644", Name: "Beige Gray - Medium", Hex: "#DDD6C7"},
	{Code: "645", Name: "Beaver Gray - Very Dark", Hex: "#6A6561"},
	{Code: "646", Name: "Beaver Gray - Dark", Hex: "#8B8985"},
	{Code: "647", Name: "Beaver Gray - Medium", Hex: "#B0AFAB"},
	{Code: "648", Name: "Beaver Gray - Light", Hex: "#BDBBB7"},
	{Code: "666", Name: "Christmas Red - Bright", Hex: "#E3172D"},
	{Code: "676", Name: "Old Gold - Light", Hex: "#E6C677"},
	{Code: "677", Name: "Old Gold - Very Light", Hex: "#F5E8C6"},
	{Code: "680", Name: "Old Gold - Dark", Hex: "#BC8820"},
	{Code: "699", Name: "Christmas Green", Hex: "#056E1D"},
	{Code: "700", Name: "Christmas Green - Bright", Hex: "#077F22"},
	{Code: "701", Name: "Christmas Green - Light", Hex: "#3F9434"},
	{Code: "702", Name: "Kelly Green", Hex: "#47A546"},
	{Code: "703", Name: "Chartreuse", Hex: "#7BB55E"},
	{Code: "704", Name: "Chartreuse - Bright", Hex: "#9EC23F"},
	{Code: "712", Name: "Cream", Hex: "#FFFDE3"},
	{Code: "718", Name: "Plum", Hex: "#9C2462"},
	{Code: "720", Name: "Orange Spice - Dark", Hex: "#E5521A"},
	{Code: "721", Name: "Orange Spice - Medium", Hex: "#F27842"},
	{Code: "722", Name: "Orange Spice - Light", Hex: "#F7977A"},
	{Code: "725", Name: "Topaz", Hex: "#FFC840"},
	{Code: "726", Name: "Topaz - Light", Hex: "#FDD755"},
	{Code: "727", Name: "Topaz - Very Light", Hex: "#FFF1A5"},
	{Code: "728", Name: "Topaz - Golden", Hex: "#E4A824"},
	{Code: "729", Name: "Old Gold - Medium", Hex: "#D0A23A"},
	{Code: "730", Name: "Olive Green - Very Dark", Hex: "#827B1A"},
	{Code: "731", Name: "Olive Green - Dark", Hex: "#918E1B"},
	{Code: "732", Name: "Olive Green", Hex: "#948E25"},
	{Code: "733", Name: "Olive Green - Medium", Hex: "#BDBA3F"},
	{Code: "734", Name: "Olive Green - Light", Hex: "#C7C36E"},
	{Code: "738", Name: "Tan - Very Light", Hex: "#ECCC9D"},
	{Code: "739", Name: "Tan - Ultra Very Light", Hex: "#F5E3CE"},
	{Code: "740", Name: "Tangerine", Hex: "#FF8313"},
	{Code: "741", Name: "Tangerine - Medium", Hex: "#FF9F26"},
	{Code: "742", Name: "Tangerine - Light", Hex: "#FFBF49"},
	{Code: "743", Name: "Yellow - Medium", Hex: "#FFCD48"},
	{Code: "744", Name: "Yellow - Pale", Hex: "#FFE475"},
	{Code: "745", Name: "Yellow - Light Pale", Hex: "#FFE9A2"},
	{Code: "746", Name: "Off White", Hex: "#FFF8E7"},
	{Code: "747", Name: "Sky Blue - Very Light", Hex: "#E5F4F6"},
	{Code: "754", Name: "Peach - Light", Hex: "#F7CAB3"},
	{Code: "758", Name: "Terra Cotta - Very Light", Hex: "#EEB5A3"},
	{Code: "760", Name: "Salmon", Hex: "#F59593"},
	{Code: "761", Name: "Salmon - Light", Hex: "#FFB9B9"},
	{Code: "762", Name: "Pearl Gray - Very Light", Hex: "#ECECEC"},
	{Code: "772", Name: "Yellow Green - Very Light", Hex: "#E4ECBA"},
	{Code: "775", Name: "Baby Blue - Very Light", Hex: "#D9E9F3"},
	{Code: "776", Name: "Pink - Medium", Hex: "#FCA4B4"},
	{Code: "777", Name: "Raspberry - Very Dark", Hex: "#8F0042"},
	{Code: "778", Name: "Antique Mauve - Very Light", Hex: "#DFB8BD"},
	{Code: "779", Name: "Cocoa - Dark", Hex: "#6B4136"},
	{Code: "780", Name: "Topaz - Ultra Very Dark", Hex: "#946426"},
	{Code: "781", Name: "Topaz - Very Dark", Hex: "#A66E14"},
	{Code: "782", Name: "Topaz - Dark", Hex: "#AE7720"},
	{Code: "783", Name: "Topaz - Medium", Hex: "#CE9127"},
	{Code: "791", Name: "Cornflower Blue - Very Dark", Hex: "#464A79"},
	{Code: "792", Name: "Cornflower Blue - Dark", Hex: "#555F8D"},
	{Code: "793", Name: "Cornflower Blue - Medium", Hex: "#7087A3"},
	{Code: "794", Name: "Cornflower Blue - Light", Hex: "#8FAEC0"},
	{Code: "796", Name: "Royal Blue - Dark", Hex: "#113D73"},
	{Code: "797", Name: "Royal Blue", Hex: "#1346A5"},
	{Code: "798", Name: "Delft Blue - Dark", Hex: "#466AA9"},
	{Code: "799", Name: "Delft Blue - Medium", Hex: "#74A3CD"},
	{Code: "800", Name: "Delft Blue - Pale", Hex: "#C0D6EA"},
	{Code: "801", Name: "Coffee Brown - Dark", Hex: "#5C3716"},
	{Code: "803", Name: "Baby Blue - Ultra Very Dark", Hex: "#2C4978"},
	{Code: "806", Name: "Peacock Blue - Dark", Hex: "#30A3AD"},
	{Code: "807", Name: "Peacock Blue", Hex: "#64B8BD"},
	{Code: "809", Name: "Delft Blue", Hex: "#94B8D5"},
	{Code: "813", Name: "Blue - Light", Hex: "#A1C6E0"},
	{Code: "814", Name: "Garnet - Dark", Hex: "#7B0027"},
	{Code: "815", Name: "Garnet - Medium", Hex: "#880D2E"},
	{Code: "816", Name: "Garnet", Hex: "#970B2F"},
	{Code: "817", Name: "Coral Red - Very Dark", Hex: "#BB0D1D"},
	{Code: "818", Name: "Baby Pink", Hex: "#FFDFE5"},
	{Code: "819", Name: "Baby Pink - Light", Hex: "#FFE5EC"},
	{Code: "820", Name: "Royal Blue - Very Dark", Hex: "#0E2E6E"},
	{Code: "822", Name: "Beige Gray - Light", Hex: "#E8E3D7"},
	{Code: "823", Name: "Navy Blue - Dark", Hex: "#213466"},
	{Code: "824", Name: "Blue - Very Dark", Hex: "#3A5D87"},
	{Code: "825", Name: "Blue - Dark", Hex: "#477AAB"},
	{Code: "826", Name: "Blue - Medium", Hex: "#6B9FC5"},
	{Code: "827", Name: "Blue - Very Light", Hex: "#B9D4E9"},
	{Code: "828", Name: "Blue - Ultra Very Light", Hex: "#C5E1EF"},
	{Code: "829", Name: "Golden Olive - Very Dark", Hex: "#7E6A21"},
	{Code: "830", Name: "Golden Olive - Dark", Hex: "#8E7A30"},
	{Code: "831", Name: "Golden Olive - Medium", Hex: "#AA903C"},
	{Code: "832", Name: "Golden Olive", Hex: "#C09C2E"},
	{Code: "833", Name: "Golden Olive - Light", Hex: "#C9AC5B"},
	{Code: "834", Name: "Golden Olive - Very Light", Hex: "#DBBD6B"},
	{Code: "838", Name: "Beige Brown - Very Dark", Hex: "#5C3F2A"},
	{Code: "839", Name: "Beige Brown - Dark", Hex: "#6E4E35"},
	{Code: "840", Name: "Beige Brown - Medium", Hex: "#9A7F66"},
	{Code: "841", Name: "Beige Brown - Light", Hex: "#B8A188"},
	{Code: "842", Name: "Beige Brown - Very Light", Hex: "#D7C9B4"},
	{Code: "844", Name: "Beaver Gray - Ultra Dark", Hex: "#545454"},
	{Code: "869", Name: "Hazelnut Brown - Very Dark", Hex: "#835F2E"},
	{Code: "890", Name: "Pistachio Green - Ultra Dark", Hex: "#174924"},
	{Code: "891", Name: "Carnation - Dark", Hex: "#FF5773"},
	{Code: "892", Name: "Carnation - Medium", Hex: "#FF6B85"},
	{Code: "893", Name: "Carnation - Light", Hex: "#FC90A7"},
	{Code: "894", Name: "Carnation - Very Light", Hex: "#FFB5C2"},
	{Code: "895", Name: "Hunter Green - Very Dark", Hex: "#1B5118"},
	{Code: "898", Name: "Coffee Brown - Very Dark", Hex: "#4A2710"},
	{Code: "899", Name: "Rose - Medium", Hex: "#F27688"},
	{Code: "900", Name: "Burnt Orange - Dark", Hex: "#D65300"},
	{Code: "902", Name: "Garnet - Very Dark", Hex: "#820024"},
	{Code: "904", Name: "Parrot Green - Very Dark", Hex: "#557122"},
	{Code: "905", Name: "Parrot Green - Dark", Hex: "#6C8B20"},
	{Code: "906", Name: "Parrot Green - Medium", Hex: "#7FAE20"},
	{Code: "907", Name: "Parrot Green - Light", Hex: "#C4D74F"},
	{Code: "909", Name: "Emerald Green - Very Dark", Hex: "#0C6847"},
	{Code: "910", Name: "Emerald Green - Dark", Hex: "#187F54"},
	{Code: "911", Name: "Emerald Green - Medium", Hex: "#189065"},
	{Code: "912", Name: "Emerald Green - Light", Hex: "#1BA176"},
	{Code: "913", Name: "Nile Green - Medium", Hex: "#6DB795"},
	{Code: "915", Name: "Plum - Dark", Hex: "#820043"},
	{Code: "917", Name: "Plum - Medium", Hex: "#9B2A6D"},
	{Code: "918", Name: "Red Copper - Dark", Hex: "#824028"},
	{Code: "919", Name: "Red Copper", Hex: "#A6512E"},
	{Code: "920", Name: "Copper - Medium", Hex: "#AC5533"},
	{Code: "921", Name: "Copper", Hex: "#C66B3D"},
	{Code: "922", Name: "Copper - Light", Hex: "#E27C49"},
	{Code: "924", Name: "Gray Green - Very Dark", Hex: "#566C62"},
	{Code: "926", Name: "Gray Green - Medium", Hex: "#98AFAA"},
	{Code: "927", Name: "Gray Green - Light", Hex: "#BDCECB"},
	{Code: "928", Name: "Gray Green - Very Light", Hex: "#DDE6E3"},
	{Code: "930", Name: "Antique Blue - Dark", Hex: "#45597F"},
	{Code: "931", Name: "Antique Blue - Medium", Hex: "#6A7F9C"},
	{Code: "932", Name: "Antique Blue - Light", Hex: "#A2B7CA"},
	{Code: "934", Name: "Black Avocado Green", Hex: "#3A3E2A"},
	{Code: "935", Name: "Avocado Green - Dark", Hex: "#495332"},
	{Code: "936", Name: "Avocado Green - Very Dark", Hex: "#4C532E"},
	{Code: "937", Name: "Avocado Green - Medium", Hex: "#627341"},
	{Code: "938", Name: "Coffee Brown - Ultra Dark", Hex: "#362312"},
	{Code: "939", Name: "Navy Blue - Very Dark", Hex: "#1B2850"},
	{Code: "943", Name: "Aquamarine - Medium", Hex: "#3DA494"},
	{Code: "945", Name: "Tawny", Hex: "#FBC7A3"},
	{Code: "946", Name: "Burnt Orange - Medium", Hex: "#EB6307"},
	{Code: "947", Name: "Burnt Orange", Hex: "#FF7B31"},
	{Code: "948", Name: "Peach - Very Light", Hex: "#FEE7D6"},
	{Code: "950", Name: "Desert Sand - Light", Hex: "#EED1BE"},
	{Code: "951", Name: "Tawny - Light", Hex: "#FFE4CA"},
	{Code: "954", Name: "Nile Green", Hex: "#88C9A7"},
	{Code: "955", Name: "Nile Green - Light", Hex: "#A5E0C0"},
	{Code: "956", Name: "Geranium", Hex: "#FF6A76"},
	{Code: "957", Name: "Geranium - Pale", Hex: "#FF9FAB"},
	{Code: "958", Name: "Seagreen - Dark", Hex: "#3DB8A3"},
	{Code: "959", Name: "Seagreen - Medium", Hex: "#59C7B3"},
	{Code: "961", Name: "Dusty Rose - Dark", Hex: "#CF6679"},
	{Code: "962", Name: "Dusty Rose - Medium", Hex: "#E77A91"},
	{Code: "963", Name: "Dusty Rose - Ultra Very Light", Hex: "#FFD4DA"},
	{Code: "964", Name: "Seagreen - Light", Hex: "#A9E2DA"},
	{Code: "966", Name: "Baby Green - Medium", Hex: "#B9D9B8"},
	{Code: "967", Name: "Apricot - Very Light", Hex: "#FFCDC1"},
	{Code: "970", Name: "Pumpkin - Light", Hex: "#FF7F26"},
	{Code: "971", Name: "Pumpkin", Hex: "#FF7700"},
	{Code: "972", Name: "Canary - Deep", Hex: "#FFB508"},
	{Code: "973", Name: "Canary - Bright", Hex: "#FFF400"},
	{Code: "975", Name: "Golden Brown - Dark", Hex: "#915224"},
	{Code: "976", Name: "Golden Brown - Medium", Hex: "#C28346"},
	{Code: "977", Name: "Golden Brown - Light", Hex: "#DC9C56"},
	{Code: "986", Name: "Forest Green - Very Dark", Hex: "#406A3A"},
	{Code: "987", Name: "Forest Green - Dark", Hex: "#587F50"},
	{Code: "988", Name: "Forest Green - Medium", Hex: "#73A063"},
	{Code: "989", Name: "Forest Green", Hex: "#8DB77E"},
	{Code: "991", Name: "Aquamarine - Dark", Hex: "#477C73"},
	{Code: "992", Name: "Aquamarine", Hex: "#6FC9B8"},
	{Code: "993", Name: "Aquamarine - Light", Hex: "#90D5C5"},
	{Code: "996", Name: "Electric Blue - Medium", Hex: "#30C1EE"},
	{Code: "3011", Name: "Khaki Green - Dark", Hex: "#898752"},
	{Code: "3012", Name: "Khaki Green - Medium", Hex: "#A6A46A"},
	{Code: "3013", Name: "Khaki Green - Light", Hex: "#B8B888"},
	{Code: "3021", Name: "Brown Gray - Very Dark", Hex: "#4C443C"},
	{Code: "3022", Name: "Brown Gray - Medium", Hex: "#8C8472"},
	{Code: "3023", Name: "Brown Gray - Light", Hex: "#B5AD9C"},
	{Code: "3024", Name: "Brown Gray - Very Light", Hex: "#E9E6E0"},
	{Code: "3031", Name: "Mocha Brown - Very Dark", Hex: "#4C3E2A"},
	{Code: "3032", Name: "Mocha Brown - Medium", Hex: "#B39B7C"},
	{Code: "3033", Name: "Mocha Brown - Very Light", Hex: "#E2D7C7"},
	{Code: "3041", Name: "Antique Violet - Medium", Hex: "#9C7F8E"},
	{Code: "3042", Name: "Antique Violet - Light", Hex: "#B7A3AF"},
	{Code: "3045", Name: "Yellow Beige - Dark", Hex: "#BC9658"},
	{Code: "3046", Name: "Yellow Beige - Medium", Hex: "#D6BB82"},
	{Code: "3047", Name: "Yellow Beige - Light", Hex: "#E7D7AC"},
	{Code: "3051", Name: "Green Gray - Dark", Hex: "#5F6949"},
	{Code: "3052", Name: "Green Gray - Medium", Hex: "#899171"},
	{Code: "3053", Name: "Green Gray", Hex: "#9CA586"},
	{Code: "3064", Name: "Desert Sand", Hex: "#C58C72"},
	{Code: "3072", Name: "Beaver Gray - Very Light", Hex: "#E8E7E5"},
	{Code: "3078", Name: "Golden Yellow - Very Light", Hex: "#FDF9CC"},
	{Code: "3325", Name: "Baby Blue - Light", Hex: "#B9D3E8"},
	{Code: "3326", Name: "Rose - Light", Hex: "#FBB4BC"},
	{Code: "3328", Name: "Salmon - Dark", Hex: "#E36D6B"},
	{Code: "3340", Name: "Apricot - Medium", Hex: "#FF8B68"},
	{Code: "3341", Name: "Apricot", Hex: "#FCAB8C"},
	{Code: "3345", Name: "Hunter Green - Dark", Hex: "#1B6022"},
	{Code: "3346", Name: "Hunter Green", Hex: "#406A33"},
	{Code: "3347", Name: "Yellow Green - Medium", Hex: "#719E4E"},
	{Code: "3348", Name: "Yellow Green - Light", Hex: "#CCEA9E"},
	{Code: "3350", Name: "Dusty Rose - Ultra Dark", Hex: "#BC4365"},
	{Code: "3354", Name: "Dusty Rose - Light", Hex: "#E4A6A9"},
	{Code: "3362", Name: "Pine Green - Dark", Hex: "#5E6D4F"},
	{Code: "3363", Name: "Pine Green - Medium", Hex: "#728266"},
	{Code: "3364", Name: "Pine Green", Hex: "#838D66"},
	{Code: "3371", Name: "Black Brown", Hex: "#1C1108"},
	{Code: "3607", Name: "Plum - Light", Hex: "#C5357D"},
	{Code: "3608", Name: "Plum - Very Light", Hex: "#EA87B4"},
	{Code: "3609", Name: "Plum - Ultra Light", Hex: "#F4A6C6"},
	{Code: "3685", Name: "Mauve - Very Dark", Hex: "#88254D"},
	{Code: "3687", Name: "Mauve", Hex: "#C96785"},
	{Code: "3688", Name: "Mauve - Medium", Hex: "#E8A0B2"},
	{Code: "3689", Name: "Mauve - Light", Hex: "#FBC3D0"},
	{Code: "3705", Name: "Melon - Dark", Hex: "#FF6E7A"},
	{Code: "3706", Name: "Melon - Medium", Hex: "#FF969D"},
	{Code: "3708", Name: "Melon - Light", Hex: "#FFBEC3"},
	{Code: "3712", Name: "Salmon - Medium", Hex: "#F1837A"},
	{Code: "3713", Name: "Salmon - Very Light", Hex: "#FFDBD8"},
	{Code: "3716", Name: "Dusty Rose - Medium Light", Hex: "#FFBDC6"},
	{Code: "3721", Name: "Shell Pink - Dark", Hex: "#A14C5A"},
	{Code: "3722", Name: "Shell Pink - Medium", Hex: "#BC6769"},
	{Code: "3726", Name: "Antique Mauve - Dark", Hex: "#9D5968"},
	{Code: "3727", Name: "Antique Mauve - Light", Hex: "#DBACB7"},
	{Code: "3731", Name: "Dusty Rose - Very Dark", Hex: "#D86680"},
	{Code: "3733", Name: "Dusty Rose", Hex: "#E8899C"},
	{Code: "3740", Name: "Antique Violet - Dark", Hex: "#786074"},
	{Code: "3743", Name: "Antique Violet - Very Light", Hex: "#D7CBD6"},
	{Code: "3746", Name: "Blue Violet - Dark", Hex: "#776FA4"},
	{Code: "3747", Name: "Blue Violet - Very Light", Hex: "#D3D6EB"},
	{Code: "3750", Name: "Antique Blue - Very Dark", Hex: "#3E5671"},
	{Code: "3752", Name: "Antique Blue - Very Light", Hex: "#C6D5E1"},
	{Code: "3753", Name: "Antique Blue - Ultra Very Light", Hex: "#DBE7ED"},
	{Code: "3755", Name: "Baby Blue", Hex: "#9FC3DA"},
	{Code: "3756", Name: "Baby Blue - Ultra Very Light", Hex: "#EEFBFD"},
	{Code: "3760", Name: "Wedgwood", Hex: "#3E8DA5"},
	{Code: "3761", Name: "Sky Blue - Light", Hex: "#AED7E5"},
	{Code: "3765", Name: "Peacock Blue - Very Dark", Hex: "#348B95"},
	{Code: "3766", Name: "Peacock Blue - Light", Hex: "#99CCD3"},
	{Code: "3768", Name: "Gray Green - Dark", Hex: "#657B7A"},
	{Code: "3770", Name: "Tawny - Very Light", Hex: "#FFF4E3"},
	{Code: "3771", Name: "Terra Cotta - Ultra Very Light", Hex: "#F4BDA5"},
	{Code: "3772", Name: "Desert Sand - Very Dark", Hex: "#A0634E"},
	{Code: "3773", Name: "Desert Sand - Medium", Hex: "#D09B82"},
	{Code: "3774", Name: "Desert Sand - Very Light", Hex: "#F5E1D6"},
	{Code: "3776", Name: "Mahogany - Light", Hex: "#CF7131"},
	{Code: "3777", Name: "Terra Cotta - Very Dark", Hex: "#863225"},
	{Code: "3778", Name: "Terra Cotta - Light", Hex: "#D98A79"},
	{Code: "3779", Name: "Terra Cotta - Ultra Very Light", Hex: "#F8C9BB"},
	{Code: "3781", Name: "Mocha Brown - Dark", Hex: "#6B5540"},
	{Code: "3782", Name: "Mocha Brown - Light", Hex: "#D2BB9D"},
	{Code: "3787", Name: "Brown Gray - Dark", Hex: "#6E6558"},
	{Code: "3790", Name: "Beige Gray - Ultra Dark", Hex: "#746655"},
	{Code: "3799", Name: "Pewter Gray - Very Dark", Hex: "#424242"},
	{Code: "3801", Name: "Melon - Very Dark", Hex: "#E74967"},
	{Code: "3802", Name: "Antique Mauve - Very Dark", Hex: "#714050"},
	{Code: "3803", Name: "Mauve - Dark", Hex: "#AB3357"},
	{Code: "3804", Name: "Cyclamen Pink - Dark", Hex: "#E02876"},
	{Code: "3805", Name: "Cyclamen Pink", Hex: "#F3478A"},
	{Code: "3806", Name: "Cyclamen Pink - Light", Hex: "#FF7EB0"},
	{Code: "3807", Name: "Cornflower Blue", Hex: "#607E9E"},
	{Code: "3808", Name: "Turquoise - Ultra Very Dark", Hex: "#366970"},
	{Code: "3809", Name: "Turquoise - Very Dark", Hex: "#3F8F94"},
	{Code: "3810", Name: "Turquoise - Dark", Hex: "#48A8AD"},
	{Code: "3811", Name: "Turquoise - Very Light", Hex: "#BCE3E6"},
	{Code: "3812", Name: "Seagreen - Very Dark", Hex: "#2F9E8A"},
	{Code: "3813", Name: "Blue Green - Light", Hex: "#B2D6C6"},
	{Code: "3814", Name: "Aquamarine", Hex: "#508F7C"},
	{Code: "3815", Name: "Celadon Green - Dark", Hex: "#477A60"},
	{Code: "3816", Name: "Celadon Green", Hex: "#65A581"},
	{Code: "3817", Name: "Celadon Green - Light", Hex: "#9BD3B4"},
	{Code: "3818", Name: "Emerald Green - Ultra Very Dark", Hex: "#115740"},
	{Code: "3819", Name: "Moss Green - Light", Hex: "#E0E868"},
	{Code: "3820", Name: "Straw - Dark", Hex: "#DFB23E"},
	{Code: "3821", Name: "Straw", Hex: "#F3C855"},
	{Code: "3822", Name: "Straw - Light", Hex: "#F6D77E"},
	{Code: "3823", Name: "Yellow - Ultra Pale", Hex: "#FFFDE3"},
	{Code: "3824", Name: "Apricot - Light", Hex: "#FED2C4"},
	{Code: "3825", Name: "Pumpkin - Pale", Hex: "#FEB977"},
	{Code: "3826", Name: "Golden Brown", Hex: "#AD7340"},
	{Code: "3827", Name: "Golden Brown - Pale", Hex: "#F7BB77"},
	{Code: "3828", Name: "Hazelnut Brown", Hex: "#B78C58"},
	{Code: "3829", Name: "Old Gold - Very Dark", Hex: "#AA7A19"},
	{Code: "3830", Name: "Terra Cotta", Hex: "#BC6148"},
	{Code: "3831", Name: "Raspberry - Dark", Hex: "#B43354"},
	{Code: "3832", Name: "Raspberry - Medium", Hex: "#DB536E"},
	{Code: "3833", Name: "Raspberry - Light", Hex: "#EA7F91"},
	{Code: "3834", Name: "Grape - Dark", Hex: "#724264"},
	{Code: "3835", Name: "Grape - Medium", Hex: "#946A88"},
	{Code: "3836", Name: "Grape - Light", Hex: "#BA92AF"},
	{Code: "3837", Name: "Lavender - Ultra Dark", Hex: "#6C3461"},
	{Code: "3838", Name: "Lavender Blue - Dark", Hex: "#5C78A3"},
	{Code: "3839", Name: "Lavender Blue - Medium", Hex: "#7B98BD"},
	{Code: "3840", Name: "Lavender Blue - Light", Hex: "#B0C4DB"},
	{Code: "3841", Name: "Baby Blue - Pale", Hex: "#CDDFED"},
	{Code: "3842", Name: "Wedgwood - Dark", Hex: "#32758E"},
	{Code: "3843", Name: "Electric Blue", Hex: "#14AAD2"},
	{Code: "3844", Name: "Turquoise - Bright - Dark", Hex: "#12A9B1"},
	{Code: "3845", Name: "Turquoise - Bright - Medium", Hex: "#04C4CA"},
	{Code: "3846", Name: "Turquoise - Bright - Light", Hex: "#06E3E8"},
	{Code: "3847", Name: "Teal Green - Dark", Hex: "#347873"},
	{Code: "3848", Name: "Teal Green - Medium", Hex: "#559490"},
	{Code: "3849", Name: "Teal Green - Light", Hex: "#52B3A8"},
	{Code: "3850", Name: "Bright Green - Dark", Hex: "#378674"},
	{Code: "3851", Name: "Bright Green - Light", Hex: "#49A989"},
	{Code: "3852", Name: "Straw - Very Dark", Hex: "#CD9D2B"},
	{Code: "3853", Name: "Autumn Gold - Dark", Hex: "#F29746"},
	{Code: "3854", Name: "Autumn Gold - Medium", Hex: "#F2AD6C"},
	{Code: "3855", Name: "Autumn Gold - Light", Hex: "#FAD396"},
	{Code: "3856", Name: "Mahogany - Ultra Very Light", Hex: "#FFC19E"},
	{Code: "3857", Name: "Rosewood - Dark", Hex: "#68352C"},
	{Code: "3858", Name: "Rosewood - Medium", Hex: "#965044"},
	{Code: "3859", Name: "Rosewood - Light", Hex: "#BA8B7C"},
	{Code: "3860", Name: "Cocoa", Hex: "#7A5E55"},
	{Code: "3861", Name: "Cocoa - Light", Hex: "#A6877C"},
	{Code: "3862", Name: "Mocha Beige - Dark", Hex: "#8A6D51"},
	{Code: "3863", Name: "Mocha Beige - Medium", Hex: "#A78B70"},
	{Code: "3864", Name: "Mocha Beige - Light", Hex: "#CBB99E"},
	{Code: "3865", Name: "Winter White", Hex: "#FAF8F4"},
	{Code: "3866", Name: "Mocha Brown - Ultra Very Light", Hex: "#FAF4EC"},
}
