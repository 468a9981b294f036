package iching

// builtinHexagrams is the shipped dataset: the four pure hexagrams.
var builtinHexagrams = []Entry{
	{
		Key: Key{Upper: 1, Lower: 1},
		Hexagram: Hexagram{
			Name:     "乾",
			Glyph:    "䷀",
			Judgment: "元亨利贞。",
			LineTexts: [6]string{
				"初九：潜龙勿用。",
				"九二：见龙在田，利见大人。",
				"九三：君子终日乾乾，夕惕若，厉无咎。",
				"九四：或跃在渊，无咎。",
				"九五：飞龙在天，利见大人。",
				"上九：亢龙有悔。",
			},
			Commentary: Commentary{
				Tuan:  "《彖》：大哉乾元，万物资始，乃统天。",
				Xici:  "《系辞》：乾以易知。",
				Xiang: "《象》：天行健，君子以自强不息。",
			},
		},
	},
	{
		Key: Key{Upper: 8, Lower: 8},
		Hexagram: Hexagram{
			Name:     "坤",
			Glyph:    "䷁",
			Judgment: "元亨，利牝马之贞。君子有攸往，先迷后得主，利。西南得朋，东北丧朋。安贞吉。",
			LineTexts: [6]string{
				"初六：履霜，坚冰至。",
				"六二：直方大，不习无不利。",
				"六三：含章可贞。或从王事，无成有终。",
				"六四：括囊；无咎，无誉。",
				"六五：黄裳，元吉。",
				"上六：龙战于野，其血玄黄。",
			},
			Commentary: Commentary{
				Tuan:  "《彖》：至哉坤元，万物资生，乃顺承天。",
				Xici:  "《系辞》：坤以简能。",
				Xiang: "《象》：地势坤，君子以厚德载物。",
			},
		},
	},
	{
		Key: Key{Upper: 6, Lower: 6},
		Hexagram: Hexagram{
			Name:     "坎",
			Glyph:    "䷜",
			Judgment: "习坎，有孚，维心亨，行有尚。",
			LineTexts: [6]string{
				"初六：习坎，入于坎窞，凶。",
				"九二：坎有险，求小得。",
				"六三：来之坎坎，险且枕，入于坎窞，勿用。",
				"六四：樽酒簋贰，用缶，纳约自牖，终无咎。",
				"九五：坎不盈，祗既平，无咎。",
				"上六：系用徽纆，寘于丛棘，三岁不得，凶。",
			},
			Commentary: Commentary{
				Tuan:  "《彖》：习坎，重险也。",
				Xici:  "《系辞》：坎，陷也。",
				Xiang: "《象》：水洊至，习坎。君子以常德行，习教事。",
			},
		},
	},
	{
		Key: Key{Upper: 3, Lower: 3},
		Hexagram: Hexagram{
			Name:     "离",
			Glyph:    "䷝",
			Judgment: "利贞，亨。畜牝牛，吉。",
			LineTexts: [6]string{
				"初九：履错然，敬之无咎。",
				"六二：黄离，元吉。",
				"九三：日昃之离，不鼓缶而歌，则大耋之嗟，凶。",
				"九四：突如其来如，焚如，死如，弃如。",
				"六五：出涕沱若，戚嗟若，吉。",
				"上九：王用出征，有嘉折首，获匪其丑，无咎。",
			},
			Commentary: Commentary{
				Tuan:  "《彖》：离，丽也；日月丽乎天，百谷草木丽乎土。",
				Xici:  "《系辞》：离，附也。",
				Xiang: "《象》：明两作，离。大人以继明照于四方。",
			},
		},
	},
}
