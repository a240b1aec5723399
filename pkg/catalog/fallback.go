package catalog

// fallbackPets is the embedded catalog used when every acquisition path
// fails. It tracks the last known published snapshot.
var fallbackPets = []Pet{
	{ID: "shadow-dragon", Names: Names{En: "Shadow Dragon", Pt: "Dragão das Sombras"}, Value: 270, Rarity: RarityLegendary, Demand: DemandHigh, Trend: TrendStable, Emoji: "🐉", Category: "pet"},
	{ID: "bat-dragon", Names: Names{En: "Bat Dragon", Pt: "Dragão Morcego"}, Value: 230, Rarity: RarityLegendary, Demand: DemandHigh, Trend: TrendRising, Emoji: "🦇", Category: "pet"},
	{ID: "giraffe", Names: Names{En: "Giraffe", Pt: "Girafa"}, Value: 255, Rarity: RarityLegendary, Demand: DemandHigh, Trend: TrendStable, Emoji: "🦒", Category: "pet"},
	{ID: "frost-dragon", Names: Names{En: "Frost Dragon", Pt: "Dragão de Gelo"}, Value: 135, Rarity: RarityLegendary, Demand: DemandHigh, Trend: TrendRising, Emoji: "❄️", Category: "pet"},
	{ID: "owl", Names: Names{En: "Owl", Pt: "Coruja"}, Value: 90, Rarity: RarityLegendary, Demand: DemandHigh, Trend: TrendStable, Emoji: "🦉", Category: "pet"},
	{ID: "parrot", Names: Names{En: "Parrot", Pt: "Papagaio"}, Value: 85, Rarity: RarityLegendary, Demand: DemandHigh, Trend: TrendStable, Emoji: "🦜", Category: "pet"},
	{ID: "evil-unicorn", Names: Names{En: "Evil Unicorn", Pt: "Unicórnio Maligno"}, Value: 80, Rarity: RarityLegendary, Demand: DemandHigh, Trend: TrendStable, Emoji: "🦄", Category: "pet"},
	{ID: "crow", Names: Names{En: "Crow", Pt: "Corvo"}, Value: 75, Rarity: RarityLegendary, Demand: DemandHigh, Trend: TrendStable, Emoji: "🐦‍⬛", Category: "pet"},
	{ID: "arctic-reindeer", Names: Names{En: "Arctic Reindeer", Pt: "Rena do Ártico"}, Value: 50, Rarity: RarityLegendary, Demand: DemandMedium, Trend: TrendStable, Emoji: "🦌", Category: "pet"},
	{ID: "turtle", Names: Names{En: "Turtle", Pt: "Tartaruga"}, Value: 40, Rarity: RarityLegendary, Demand: DemandMedium, Trend: TrendStable, Emoji: "🐢", Category: "pet"},
	{ID: "kangaroo", Names: Names{En: "Kangaroo", Pt: "Canguru"}, Value: 38, Rarity: RarityLegendary, Demand: DemandMedium, Trend: TrendStable, Emoji: "🦘", Category: "pet"},
	{ID: "lion", Names: Names{En: "Lion", Pt: "Leão"}, Value: 45, Rarity: RarityLegendary, Demand: DemandMedium, Trend: TrendStable, Emoji: "🦁", Category: "pet"},
	{ID: "flamingo", Names: Names{En: "Flamingo", Pt: "Flamingo"}, Value: 25, Rarity: RarityUltraRare, Demand: DemandMedium, Trend: TrendStable, Emoji: "🦩", Category: "pet"},
	{ID: "dalmatian", Names: Names{En: "Dalmatian", Pt: "Dálmata"}, Value: 20, Rarity: RarityUltraRare, Demand: DemandMedium, Trend: TrendStable, Emoji: "🐕", Category: "pet"},
	{ID: "cow", Names: Names{En: "Cow", Pt: "Vaca"}, Value: 18, Rarity: RarityRare, Demand: DemandMedium, Trend: TrendRising, Emoji: "🐄", Category: "pet"},
	{ID: "elephant", Names: Names{En: "Elephant", Pt: "Elefante"}, Value: 22, Rarity: RarityRare, Demand: DemandMedium, Trend: TrendStable, Emoji: "🐘", Category: "pet"},
	{ID: "pig", Names: Names{En: "Pig", Pt: "Porco"}, Value: 15, Rarity: RarityRare, Demand: DemandMedium, Trend: TrendStable, Emoji: "🐷", Category: "pet"},
	{ID: "llama", Names: Names{En: "Llama", Pt: "Lhama"}, Value: 12, Rarity: RarityUncommon, Demand: DemandLow, Trend: TrendStable, Emoji: "🦙", Category: "pet"},
	{ID: "chicken", Names: Names{En: "Chicken", Pt: "Galinha"}, Value: 10, Rarity: RarityRare, Demand: DemandLow, Trend: TrendStable, Emoji: "🐔", Category: "pet"},
	{ID: "unicorn", Names: Names{En: "Unicorn", Pt: "Unicórnio"}, Value: 8, Rarity: RarityLegendary, Demand: DemandLow, Trend: TrendFalling, Emoji: "🦄", Category: "pet"},
	{ID: "dragon", Names: Names{En: "Dragon", Pt: "Dragão"}, Value: 7, Rarity: RarityLegendary, Demand: DemandLow, Trend: TrendFalling, Emoji: "🐉", Category: "pet"},
	{ID: "kitsune", Names: Names{En: "Kitsune", Pt: "Kitsune"}, Value: 6, Rarity: RarityLegendary, Demand: DemandLow, Trend: TrendStable, Emoji: "🦊", Category: "pet"},
	{ID: "robo-dog", Names: Names{En: "Robo Dog", Pt: "Cachorro Robô"}, Value: 5, Rarity: RarityLegendary, Demand: DemandLow, Trend: TrendStable, Emoji: "🤖", Category: "pet"},
	{ID: "king-bee", Names: Names{En: "King Bee", Pt: "Abelha Rei"}, Value: 4, Rarity: RarityLegendary, Demand: DemandLow, Trend: TrendFalling, Emoji: "🐝", Category: "pet"},
	{ID: "cerberus", Names: Names{En: "Cerberus", Pt: "Cérbero"}, Value: 3, Rarity: RarityLegendary, Demand: DemandLow, Trend: TrendStable, Emoji: "🐕‍🦺", Category: "pet"},
}

// Fallback returns a fresh copy of the embedded catalog, so callers can
// never alias the package-level table.
func Fallback() Dataset {
	pets := make([]Pet, len(fallbackPets))
	copy(pets, fallbackPets)
	return Dataset{
		Version:     "1.0.0",
		LastUpdated: "2025-10-08T12:00:00Z",
		Pets:        pets,
	}
}
