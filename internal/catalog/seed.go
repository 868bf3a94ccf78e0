package catalog

import "github.com/misterclayt0n/liftlog/internal/models"

// seedExercises is the built-in exercise list loaded into an empty store.
var seedExercises = []models.Exercise{
	{Name: "Ab Rollout", BodyPart: "Core"},
	{Name: "Ab Wheel Rollout", BodyPart: "Core"},
	{Name: "Arnold Press", BodyPart: "Shoulders"},
	{Name: "Atlas Stones", BodyPart: "Full Body"},
	{Name: "Back Extension", BodyPart: "Lower Back"},
	{Name: "Back Squat", BodyPart: "Legs"},
	{Name: "Ball Slams", BodyPart: "Full Body"},
	{Name: "Barbell Curl", BodyPart: "Biceps"},
	{Name: "Barbell Row", BodyPart: "Back"},
	{Name: "Barbell Shrug", BodyPart: "Traps"},
	{Name: "Battle Ropes", BodyPart: "Full Body"},
	{Name: "Bench Dips", BodyPart: "Triceps"},
	{Name: "Bench Press", BodyPart: "Chest"},
	{Name: "Bent-over Row", BodyPart: "Back"},
	{Name: "Bicycle Crunches", BodyPart: "Core"},
	{Name: "Bicep Curl", BodyPart: "Biceps"},
	{Name: "Bodyweight Squat", BodyPart: "Legs"},
	{Name: "Box Jump", BodyPart: "Legs"},
	{Name: "Broad Jump", BodyPart: "Legs"},
	{Name: "Bulgarian Split Squat", BodyPart: "Legs"},
	{Name: "Burpees", BodyPart: "Full Body"},
	{Name: "Cable Crossover", BodyPart: "Chest"},
	{Name: "Cable Fly", BodyPart: "Chest"},
	{Name: "Cable Lateral Raise", BodyPart: "Shoulders"},
	{Name: "Cable Row", BodyPart: "Back"},
	{Name: "Calf Raises", BodyPart: "Calves"},
	{Name: "Cannonball Squat", BodyPart: "Legs"},
	{Name: "Chest Dips", BodyPart: "Chest"},
	{Name: "Chest Fly", BodyPart: "Chest"},
	{Name: "Chin-ups", BodyPart: "Back"},
	{Name: "Clean and Jerk", BodyPart: "Full Body"},
	{Name: "Clean and Press", BodyPart: "Full Body"},
	{Name: "Close-Grip Bench Press", BodyPart: "Triceps"},
	{Name: "Close-Grip Pull-ups", BodyPart: "Back"},
	{Name: "Cluster Set Squats", BodyPart: "Legs"},
	{Name: "Copenhagen Plank", BodyPart: "Core"},
	{Name: "Concentration Curl", BodyPart: "Biceps"},
	{Name: "Core Twists", BodyPart: "Core"},
	{Name: "Crunches", BodyPart: "Core"},
	{Name: "Cyclist Squat", BodyPart: "Legs"},
	{Name: "Dead Hang", BodyPart: "Grip Strength"},
	{Name: "Deadlift", BodyPart: "Full Body"},
	{Name: "Decline Bench Press", BodyPart: "Chest"},
	{Name: "Deficit Deadlift", BodyPart: "Hamstrings"},
	{Name: "Deficit Push-ups", BodyPart: "Chest"},
	{Name: "Diamond Push-ups", BodyPart: "Triceps"},
	{Name: "Dips", BodyPart: "Triceps"},
	{Name: "Donkey Kicks", BodyPart: "Glutes"},
	{Name: "Dumbbell Arnold Press", BodyPart: "Shoulders"},
	{Name: "Dumbbell Bench Press", BodyPart: "Chest"},
	{Name: "Dumbbell Bulgarian Split Squat", BodyPart: "Legs"},
	{Name: "Dumbbell Chest Fly", BodyPart: "Chest"},
	{Name: "Dumbbell Deadlift", BodyPart: "Legs"},
	{Name: "Dumbbell Fly", BodyPart: "Chest"},
	{Name: "Dumbbell Hammer Curl", BodyPart: "Biceps"},
	{Name: "Dumbbell Lateral Raise", BodyPart: "Shoulders"},
	{Name: "Dumbbell Lunges", BodyPart: "Legs"},
	{Name: "Dumbbell Overhead Press", BodyPart: "Shoulders"},
	{Name: "Dumbbell Pullover", BodyPart: "Chest"},
	{Name: "Dumbbell Row", BodyPart: "Back"},
	{Name: "Dumbbell Snatch", BodyPart: "Full Body"},
	{Name: "Dumbbell Step-ups", BodyPart: "Legs"},
	{Name: "Dumbbell Squat", BodyPart: "Legs"},
	{Name: "Dumbbell Thrusters", BodyPart: "Full Body"},
	{Name: "Dumbbell Upright Row", BodyPart: "Shoulders"},
	{Name: "Dynamic Lunges", BodyPart: "Legs"},
	{Name: "Elevated Split Squat", BodyPart: "Legs"},
	{Name: "EZ-Bar Curl", BodyPart: "Biceps"},
	{Name: "Face Pulls", BodyPart: "Shoulders"},
	{Name: "Farmer’s Carry", BodyPart: "Grip Strength"},
	{Name: "Flat Bench Press", BodyPart: "Chest"},
	{Name: "Flutter Kicks", BodyPart: "Core"},
	{Name: "Front Lever", BodyPart: "Core"},
	{Name: "Front Squat", BodyPart: "Legs"},
	{Name: "Goblet Squat", BodyPart: "Legs"},
	{Name: "Glute Bridge", BodyPart: "Glutes"},
	{Name: "Good Mornings", BodyPart: "Hamstrings"},
	{Name: "Hack Squat", BodyPart: "Legs"},
	{Name: "Hammer Curl", BodyPart: "Biceps"},
	{Name: "Hanging Knee Raise", BodyPart: "Core"},
	{Name: "Handstand Push-ups", BodyPart: "Shoulders"},
	{Name: "Incline Bench Press", BodyPart: "Chest"},
	{Name: "Incline Dumbbell Fly", BodyPart: "Chest"},
	{Name: "Inverted Row", BodyPart: "Back"},
	{Name: "Jump Rope", BodyPart: "Cardio"},
	{Name: "Jump Squat", BodyPart: "Legs"},
	{Name: "Kettlebell Swing", BodyPart: "Full Body"},
	{Name: "Leg Curl", BodyPart: "Hamstrings"},
	{Name: "Leg Extension", BodyPart: "Quads"},
	{Name: "Leg Press", BodyPart: "Legs"},
	{Name: "Lunges", BodyPart: "Legs"},
	{Name: "Medicine Ball Slam", BodyPart: "Core"},
	{Name: "Military Press", BodyPart: "Shoulders"},
	{Name: "Mountain Climbers", BodyPart: "Core"},
	{Name: "Nordic Hamstring Curl", BodyPart: "Hamstrings"},
	{Name: "Overhead Press", BodyPart: "Shoulders"},
	{Name: "Overhead Squat", BodyPart: "Legs"},
	{Name: "Plank", BodyPart: "Core"},
	{Name: "Pull-ups", BodyPart: "Back"},
	{Name: "Push Press", BodyPart: "Shoulders"},
	{Name: "Push-ups", BodyPart: "Chest"},
	{Name: "Renegade Rows", BodyPart: "Back"},
	{Name: "Reverse Fly", BodyPart: "Shoulders"},
	{Name: "Reverse Lunge", BodyPart: "Legs"},
	{Name: "Romanian Deadlift", BodyPart: "Hamstrings"},
	{Name: "Russian Twist", BodyPart: "Obliques"},
	{Name: "Seated Row", BodyPart: "Back"},
	{Name: "Shoulder Press", BodyPart: "Shoulders"},
	{Name: "Side Plank", BodyPart: "Core"},
	{Name: "Squats", BodyPart: "Legs"},
	{Name: "Step-ups", BodyPart: "Legs"},
	{Name: "Sumo Deadlift", BodyPart: "Hamstrings"},
	{Name: "Toe Touches", BodyPart: "Core"},
	{Name: "Triceps Dips", BodyPart: "Triceps"},
	{Name: "Triceps Extension", BodyPart: "Triceps"},
	{Name: "Turkish Get-up", BodyPart: "Full Body"},
	{Name: "Upright Row", BodyPart: "Shoulders"},
	{Name: "V-ups", BodyPart: "Core"},
	{Name: "Wall Sit", BodyPart: "Legs"},
	{Name: "Wide-Grip Pull-up", BodyPart: "Back"},
	{Name: "Zercher Squat", BodyPart: "Legs"},
}
