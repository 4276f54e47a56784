package goal

import "context"

// SeedFireRedProgression pre-populates the full FireRed progression as one
// root goal with a sequential milestone chain from Pallet Town to the
// Elite Four. Returns the root goal id.
func (p *Planner) SeedFireRedProgression(ctx context.Context) (string, error) {
	root, err := p.AddGoal(ctx,
		"Beat the Elite Four",
		"Complete Pokemon FireRed by defeating all 8 gym leaders and the Elite Four + Champion",
		1, "", nil)
	if err != nil {
		return "", err
	}

	steps := []Step{
		{Name: "Pallet Town - Get starter Pokemon", Description: "Go downstairs, try to leave town, go to Oak's lab, pick a starter (Charmander/Squirtle/Bulbasaur), win rival battle", Sequential: true},
		{Name: "Route 1 - Reach Viridian City", Description: "Walk north through Route 1 to Viridian City. Battle wild Pokemon to gain XP along the way", Sequential: true},
		{Name: "Viridian City - Deliver Oak's Parcel", Description: "Get Oak's Parcel from the Poke Mart, deliver it to Prof. Oak in Pallet Town, return to Viridian City", Sequential: true},
		{Name: "Route 2 + Viridian Forest - Reach Pewter City", Description: "Go north through Route 2 and Viridian Forest. Train Pokemon to Lv.12+ for Brock. Catch a Pikachu if possible", Sequential: true},
		{Name: "Pewter City - Beat Brock (Gym 1, Rock)", Description: "Challenge Brock's Rock-type gym. Use Water/Grass moves. His ace is Onix Lv.14. Need Lv.12+ to win", Sequential: true},
		{Name: "Route 3 + Mt. Moon - Reach Cerulean City", Description: "Travel through Route 3, Mt. Moon (get fossils), Route 4 to Cerulean City. Train along the way", Sequential: true},
		{Name: "Cerulean City - Beat Misty (Gym 2, Water)", Description: "Challenge Misty's Water-type gym. Use Grass/Electric moves. Her ace is Starmie Lv.21. Need Lv.18+", Sequential: true},
		{Name: "Route 24/25 - Nugget Bridge + Bill's House", Description: "Cross Nugget Bridge (5 trainers + Rocket Grunt), visit Bill's house to get the SS Anne ticket", Sequential: true},
		{Name: "Routes 5/6 - Reach Vermilion City", Description: "Go south through Routes 5 and 6, through the underground path, to Vermilion City", Sequential: true},
		{Name: "SS Anne - Get HM01 Cut", Description: "Board the SS Anne, battle trainers, defeat rival, get HM01 Cut from the captain", Sequential: true},
		{Name: "Vermilion City - Beat Lt. Surge (Gym 3, Electric)", Description: "Use Cut on the tree blocking the gym. Solve the trash can switch puzzle. Beat Lt. Surge's Electric types. Use Ground moves. His ace is Raichu Lv.24", Sequential: true},
		{Name: "Routes 9/10 + Rock Tunnel - Reach Lavender Town", Description: "Travel east through Route 9, Rock Tunnel (need Flash), Route 10 to Lavender Town", Sequential: true},
		{Name: "Celadon City - Beat Erika (Gym 4, Grass)", Description: "Go west to Celadon City. Challenge Erika's Grass-type gym. Use Fire/Flying/Ice moves. Her ace is Vileplume Lv.29", Sequential: true},
		{Name: "Celadon City - Rocket Game Corner + Silph Scope", Description: "Infiltrate the Rocket Game Corner hideout, defeat Giovanni, get the Silph Scope", Sequential: true},
		{Name: "Lavender Town - Clear Pokemon Tower", Description: "Use Silph Scope in Pokemon Tower. Battle Ghost Marowak. Rescue Mr. Fuji. Get the Poke Flute", Sequential: true},
		{Name: "Saffron City - Clear Silph Co.", Description: "Enter Silph Co., navigate floors, defeat Rocket Grunts, battle rival, defeat Giovanni. Get Master Ball", Sequential: true},
		{Name: "Saffron City - Beat Sabrina (Gym 5, Psychic)", Description: "Navigate the teleporter maze gym. Beat Sabrina's Psychic types. Use Bug/Ghost/Dark moves. Her ace is Alakazam Lv.43", Sequential: true},
		{Name: "Fuchsia City - Beat Koga (Gym 6, Poison)", Description: "Travel to Fuchsia City. Beat Koga's Poison-type gym. Use Ground/Psychic moves. His ace is Weezing Lv.43. Get HM03 Surf from Safari Zone", Sequential: true},
		{Name: "Cinnabar Island - Beat Blaine (Gym 7, Fire)", Description: "Surf south to Cinnabar Island. Get Secret Key from Pokemon Mansion. Beat Blaine's Fire types. Use Water/Ground/Rock moves. His ace is Arcanine Lv.47", Sequential: true},
		{Name: "Viridian City - Beat Giovanni (Gym 8, Ground)", Description: "Return to Viridian City gym. Beat Giovanni's Ground types. Use Water/Grass/Ice moves. His ace is Rhyhorn Lv.50", Sequential: true},
		{Name: "Route 23 + Victory Road", Description: "Show all 8 badges at the gate. Navigate Victory Road (strength puzzles). Train team to Lv.50+", Sequential: true},
		{Name: "Indigo Plateau - Elite Four + Champion", Description: "Beat Lorelei (Ice), Bruno (Fighting), Agatha (Ghost), Lance (Dragon), then Champion (rival). Need Lv.55+ team with good type coverage", Sequential: true},
	}

	if _, err := p.AddSubgoals(ctx, root, steps); err != nil {
		return root, err
	}
	return root, nil
}
