package recommend

// Match vocabularies for the rule-based classifier. These are kept as named
// tables (not inline literals) so the matching rules stay testable and can be
// extended without touching control flow. Terms are matched as substrings:
// form-factor terms case-sensitively, everything else case-insensitively.
var (
	// LaptopTerms indicate the user (or a catalog row) means a laptop.
	LaptopTerms = []string{
		"ノートパソコン",
		"ノートPC",
		"ノート",
		"laptop",
		"Laptop",
	}

	// DesktopTerms indicate a desktop tower or all-in-one.
	DesktopTerms = []string{
		"デスクトップ",
		"desktop",
		"Desktop",
		"タワー",
		"一体型",
	}

	// GameGenreTerms are generic gaming words. They mark a heavy use-case but
	// do NOT count as a specific game title.
	GameGenreTerms = []string{
		"ゲーム",
		"げーむ",
		"ゲーミング",
		"game",
		"gaming",
		"fps",
		"mmo",
	}

	// GameTitleTerms are concrete titles the shop gets asked about. Seeing one
	// of these resolves the game-title slot.
	GameTitleTerms = []string{
		"フォートナイト",
		"fortnite",
		"apex",
		"エーペックス",
		"valorant",
		"ヴァロラント",
		"原神",
		"マインクラフト",
		"マイクラ",
		"minecraft",
		"モンハン",
		"パルワールド",
		"スト6",
	}

	// CreatorTerms are non-gaming workloads that still need GPU headroom.
	CreatorTerms = []string{
		"動画編集",
		"実況",
		"配信",
		"イラスト",
		"お絵描き",
		"お絵かき",
		"クリスタ",
		"photoshop",
		"premiere",
		"aviutl",
		"blender",
	}

	// LightUseTerms are everyday tasks any in-stock machine can handle.
	LightUseTerms = []string{
		"ネット",
		"ブラウジング",
		"調べ物",
		"動画視聴",
		"動画を見",
		"youtube",
		"メール",
		"事務",
		"仕事",
		"書類",
		"文書",
		"office",
		"エクセル",
		"ワード",
		"zoom",
	}

	// GPUTerms tag catalog rows that carry a discrete GPU.
	GPUTerms = []string{
		"geforce",
		"gtx",
		"rtx",
		"radeon",
		"rx",
		"quadro",
		"グラボ",
		"グラフィックボード",
		"グラフィックカード",
		"gpu",
		"graphics",
	}

	// OtherGameTerms mean "a game not in GameTitleTerms". They resolve the
	// game-title slot just like a concrete title would.
	OtherGameTerms = []string{
		"その他のゲーム",
	}

	// EitherFormFactorTerms mean the user has no form-factor preference.
	EitherFormFactorTerms = []string{
		"どちらでも",
		"どっちでも",
		"こだわらない",
	}
)

// HeavyUseTerms is the full heavy-task vocabulary: gaming plus creator work.
func HeavyUseTerms() []string {
	terms := make([]string, 0, len(GameGenreTerms)+len(GameTitleTerms)+len(CreatorTerms))
	terms = append(terms, GameGenreTerms...)
	terms = append(terms, GameTitleTerms...)
	terms = append(terms, CreatorTerms...)
	return terms
}
