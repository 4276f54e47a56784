package battle

// Static Gen 1 registries covering the species and moves commonly
// encountered in FireRed. Names absent from the tables simply produce no
// recommendation.

// speciesTypes maps a species name to its one or two types.
var speciesTypes = map[string][]string{
	"Bulbasaur": {"Grass", "Poison"}, "Ivysaur": {"Grass", "Poison"}, "Venusaur": {"Grass", "Poison"},
	"Charmander": {"Fire"}, "Charmeleon": {"Fire"}, "Charizard": {"Fire", "Flying"},
	"Squirtle": {"Water"}, "Wartortle": {"Water"}, "Blastoise": {"Water"},
	"Caterpie": {"Bug"}, "Metapod": {"Bug"}, "Butterfree": {"Bug", "Flying"},
	"Weedle": {"Bug", "Poison"}, "Kakuna": {"Bug", "Poison"}, "Beedrill": {"Bug", "Poison"},
	"Pidgey": {"Normal", "Flying"}, "Pidgeotto": {"Normal", "Flying"}, "Pidgeot": {"Normal", "Flying"},
	"Rattata": {"Normal"}, "Raticate": {"Normal"},
	"Spearow": {"Normal", "Flying"}, "Fearow": {"Normal", "Flying"},
	"Ekans": {"Poison"}, "Arbok": {"Poison"},
	"Pikachu": {"Electric"}, "Raichu": {"Electric"},
	"Sandshrew": {"Ground"}, "Sandslash": {"Ground"},
	"Nidoran-F": {"Poison"}, "Nidorina": {"Poison"}, "Nidoqueen": {"Poison", "Ground"},
	"Nidoran-M": {"Poison"}, "Nidorino": {"Poison"}, "Nidoking": {"Poison", "Ground"},
	"Clefairy": {"Normal"}, "Clefable": {"Normal"},
	"Vulpix": {"Fire"}, "Ninetales": {"Fire"},
	"Jigglypuff": {"Normal"}, "Wigglytuff": {"Normal"},
	"Zubat": {"Poison", "Flying"}, "Golbat": {"Poison", "Flying"},
	"Oddish": {"Grass", "Poison"}, "Gloom": {"Grass", "Poison"}, "Vileplume": {"Grass", "Poison"},
	"Paras": {"Bug", "Grass"}, "Parasect": {"Bug", "Grass"},
	"Venonat": {"Bug", "Poison"}, "Venomoth": {"Bug", "Poison"},
	"Diglett": {"Ground"}, "Dugtrio": {"Ground"},
	"Meowth": {"Normal"}, "Persian": {"Normal"},
	"Psyduck": {"Water"}, "Golduck": {"Water"},
	"Mankey": {"Fighting"}, "Primeape": {"Fighting"},
	"Growlithe": {"Fire"}, "Arcanine": {"Fire"},
	"Poliwag": {"Water"}, "Poliwhirl": {"Water"}, "Poliwrath": {"Water", "Fighting"},
	"Abra": {"Psychic"}, "Kadabra": {"Psychic"}, "Alakazam": {"Psychic"},
	"Machop": {"Fighting"}, "Machoke": {"Fighting"}, "Machamp": {"Fighting"},
	"Bellsprout": {"Grass", "Poison"}, "Weepinbell": {"Grass", "Poison"}, "Victreebel": {"Grass", "Poison"},
	"Tentacool": {"Water", "Poison"}, "Tentacruel": {"Water", "Poison"},
	"Geodude": {"Rock", "Ground"}, "Graveler": {"Rock", "Ground"}, "Golem": {"Rock", "Ground"},
	"Ponyta": {"Fire"}, "Rapidash": {"Fire"},
	"Slowpoke": {"Water", "Psychic"}, "Slowbro": {"Water", "Psychic"},
	"Magnemite": {"Electric", "Steel"}, "Magneton": {"Electric", "Steel"},
	"Farfetch'd": {"Normal", "Flying"},
	"Doduo":      {"Normal", "Flying"}, "Dodrio": {"Normal", "Flying"},
	"Seel": {"Water"}, "Dewgong": {"Water", "Ice"},
	"Grimer": {"Poison"}, "Muk": {"Poison"},
	"Shellder": {"Water"}, "Cloyster": {"Water", "Ice"},
	"Gastly": {"Ghost", "Poison"}, "Haunter": {"Ghost", "Poison"}, "Gengar": {"Ghost", "Poison"},
	"Onix":    {"Rock", "Ground"},
	"Drowzee": {"Psychic"}, "Hypno": {"Psychic"},
	"Krabby": {"Water"}, "Kingler": {"Water"},
	"Voltorb": {"Electric"}, "Electrode": {"Electric"},
	"Exeggcute": {"Grass", "Psychic"}, "Exeggutor": {"Grass", "Psychic"},
	"Cubone": {"Ground"}, "Marowak": {"Ground"},
	"Hitmonlee": {"Fighting"}, "Hitmonchan": {"Fighting"},
	"Lickitung": {"Normal"},
	"Koffing":   {"Poison"}, "Weezing": {"Poison"},
	"Rhyhorn": {"Ground", "Rock"}, "Rhydon": {"Ground", "Rock"},
	"Chansey": {"Normal"}, "Tangela": {"Grass"}, "Kangaskhan": {"Normal"},
	"Horsea": {"Water"}, "Seadra": {"Water"},
	"Goldeen": {"Water"}, "Seaking": {"Water"},
	"Staryu": {"Water"}, "Starmie": {"Water", "Psychic"},
	"Mr. Mime": {"Psychic"}, "Scyther": {"Bug", "Flying"},
	"Jynx": {"Ice", "Psychic"}, "Electabuzz": {"Electric"}, "Magmar": {"Fire"},
	"Pinsir": {"Bug"}, "Tauros": {"Normal"},
	"Magikarp": {"Water"}, "Gyarados": {"Water", "Flying"},
	"Lapras": {"Water", "Ice"}, "Ditto": {"Normal"},
	"Eevee": {"Normal"}, "Vaporeon": {"Water"}, "Jolteon": {"Electric"}, "Flareon": {"Fire"},
	"Porygon": {"Normal"},
	"Omanyte": {"Rock", "Water"}, "Omastar": {"Rock", "Water"},
	"Kabuto": {"Rock", "Water"}, "Kabutops": {"Rock", "Water"},
	"Aerodactyl": {"Rock", "Flying"}, "Snorlax": {"Normal"},
	"Articuno": {"Ice", "Flying"}, "Zapdos": {"Electric", "Flying"}, "Moltres": {"Fire", "Flying"},
	"Dratini": {"Dragon"}, "Dragonair": {"Dragon"}, "Dragonite": {"Dragon", "Flying"},
	"Mewtwo": {"Psychic"}, "Mew": {"Psychic"},
}

// moveTypes maps a move name to its type.
var moveTypes = map[string]string{
	"Tackle": "Normal", "Scratch": "Normal", "Pound": "Normal", "Slam": "Normal",
	"Body Slam": "Normal", "Take Down": "Normal", "Double-Edge": "Normal",
	"Hyper Beam": "Normal", "Quick Attack": "Normal", "Slash": "Normal",
	"Headbutt": "Normal", "Strength": "Normal", "Cut": "Normal", "Swift": "Normal",
	"Ember": "Fire", "Flamethrower": "Fire", "Fire Blast": "Fire", "Fire Punch": "Fire",
	"Fire Spin": "Fire", "Flame Wheel": "Fire",
	"Water Gun": "Water", "Surf": "Water", "Hydro Pump": "Water", "Bubble": "Water",
	"Bubble Beam": "Water", "Waterfall": "Water", "Water Pulse": "Water",
	"Thunder Shock": "Electric", "Thunderbolt": "Electric", "Thunder": "Electric",
	"Thunder Punch": "Electric", "Thunder Wave": "Electric", "Spark": "Electric",
	"Vine Whip": "Grass", "Razor Leaf": "Grass", "Solar Beam": "Grass",
	"Mega Drain": "Grass", "Giga Drain": "Grass", "Absorb": "Grass", "Leech Seed": "Grass",
	"Bullet Seed": "Grass", "Leaf Blade": "Grass",
	"Ice Beam": "Ice", "Blizzard": "Ice", "Ice Punch": "Ice", "Aurora Beam": "Ice",
	"Powder Snow": "Ice", "Icy Wind": "Ice",
	"Karate Chop": "Fighting", "Low Kick": "Fighting", "Submission": "Fighting",
	"Seismic Toss": "Fighting", "Cross Chop": "Fighting", "Brick Break": "Fighting",
	"Mach Punch": "Fighting", "Dynamic Punch": "Fighting",
	"Poison Sting": "Poison", "Sludge": "Poison", "Sludge Bomb": "Poison",
	"Toxic": "Poison", "Acid": "Poison", "Poison Powder": "Poison",
	"Earthquake": "Ground", "Dig": "Ground", "Mud-Slap": "Ground",
	"Bone Club": "Ground", "Bonemerang": "Ground", "Mud Shot": "Ground",
	"Gust": "Flying", "Wing Attack": "Flying", "Fly": "Flying", "Drill Peck": "Flying",
	"Peck": "Flying", "Aerial Ace": "Flying", "Sky Attack": "Flying",
	"Confusion": "Psychic", "Psychic": "Psychic", "Psybeam": "Psychic",
	"Hypnosis": "Psychic", "Dream Eater": "Psychic", "Extrasensory": "Psychic",
	"Leech Life": "Bug", "Pin Missile": "Bug", "Twineedle": "Bug",
	"Signal Beam": "Bug", "Silver Wind": "Bug",
	"Rock Throw": "Rock", "Rock Slide": "Rock", "Rock Tomb": "Rock",
	"Ancient Power": "Rock", "Rock Blast": "Rock",
	"Lick": "Ghost", "Shadow Ball": "Ghost", "Night Shade": "Ghost",
	"Shadow Punch": "Ghost", "Astonish": "Ghost",
	"Dragon Rage": "Dragon", "Dragon Breath": "Dragon", "Dragon Claw": "Dragon",
	"Outrage": "Dragon", "Twister": "Dragon",
	"Bite": "Dark", "Crunch": "Dark", "Pursuit": "Dark", "Thief": "Dark",
	"Faint Attack": "Dark",
	"Steel Wing":   "Steel", "Iron Tail": "Steel", "Metal Claw": "Steel",
	"Meteor Mash": "Steel", "Iron Defense": "Steel",
}

// DefaultChart returns the built-in damage multiplier table. Only the
// non-neutral matchups are listed; everything else is 1.0.
func DefaultChart() TypeChart {
	return TypeChart{
		"Normal": {"Rock": 0.5, "Ghost": 0.0, "Steel": 0.5},
		"Fire": {"Fire": 0.5, "Water": 0.5, "Grass": 2.0, "Ice": 2.0,
			"Bug": 2.0, "Rock": 0.5, "Dragon": 0.5, "Steel": 2.0},
		"Water": {"Fire": 2.0, "Water": 0.5, "Grass": 0.5, "Ground": 2.0,
			"Rock": 2.0, "Dragon": 0.5},
		"Electric": {"Water": 2.0, "Electric": 0.5, "Grass": 0.5,
			"Ground": 0.0, "Flying": 2.0, "Dragon": 0.5},
		"Grass": {"Fire": 0.5, "Water": 2.0, "Grass": 0.5, "Poison": 0.5,
			"Ground": 2.0, "Flying": 0.5, "Bug": 0.5, "Rock": 2.0,
			"Dragon": 0.5, "Steel": 0.5},
		"Ice": {"Fire": 0.5, "Water": 0.5, "Grass": 2.0, "Ice": 0.5,
			"Ground": 2.0, "Flying": 2.0, "Dragon": 2.0, "Steel": 0.5},
		"Fighting": {"Normal": 2.0, "Ice": 2.0, "Poison": 0.5, "Flying": 0.5,
			"Psychic": 0.5, "Bug": 0.5, "Rock": 2.0, "Ghost": 0.0,
			"Dark": 2.0, "Steel": 2.0},
		"Poison": {"Grass": 2.0, "Poison": 0.5, "Ground": 0.5, "Rock": 0.5,
			"Ghost": 0.5, "Steel": 0.0},
		"Ground": {"Fire": 2.0, "Electric": 2.0, "Grass": 0.5, "Poison": 2.0,
			"Flying": 0.0, "Bug": 0.5, "Rock": 2.0, "Steel": 2.0},
		"Flying": {"Electric": 0.5, "Grass": 2.0, "Fighting": 2.0, "Bug": 2.0,
			"Rock": 0.5, "Steel": 0.5},
		"Psychic": {"Fighting": 2.0, "Poison": 2.0, "Psychic": 0.5,
			"Dark": 0.0, "Steel": 0.5},
		"Bug": {"Fire": 0.5, "Grass": 2.0, "Fighting": 0.5, "Poison": 0.5,
			"Flying": 0.5, "Psychic": 2.0, "Ghost": 0.5, "Dark": 2.0,
			"Steel": 0.5},
		"Rock": {"Fire": 2.0, "Ice": 2.0, "Fighting": 0.5, "Ground": 0.5,
			"Flying": 2.0, "Bug": 2.0, "Steel": 0.5},
		"Ghost": {"Normal": 0.0, "Psychic": 2.0, "Ghost": 2.0, "Dark": 0.5,
			"Steel": 0.5},
		"Dragon": {"Dragon": 2.0, "Steel": 0.5},
		"Dark": {"Fighting": 0.5, "Psychic": 2.0, "Ghost": 2.0, "Dark": 0.5,
			"Steel": 0.5},
		"Steel": {"Fire": 0.5, "Water": 0.5, "Electric": 0.5, "Ice": 2.0,
			"Rock": 2.0, "Steel": 0.5},
	}
}

// SpeciesTypes returns the known type(s) of a species, or nil when the
// species is not in the registry.
func SpeciesTypes(name string) []string {
	return speciesTypes[name]
}

// MoveType returns the type of a move.
func MoveType(name string) (string, bool) {
	t, ok := moveTypes[name]
	return t, ok
}
