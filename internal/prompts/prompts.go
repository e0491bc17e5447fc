// Package prompts holds the static guided-prompt tracks. Each pillar has a
// 30-day sequence; the insights layer decides which day to serve via the
// user's furthest day-in-track.
package prompts

import (
	"github.com/stoicaf/stoicaf-backend/internal/models"
)

// TrackLength is the number of days in every pillar's guided sequence.
const TrackLength = 30

var tracks = map[models.Pillar][]string{
	models.PillarMoney: {
		"What does 'enough' money look like for you, in one sentence?",
		"Write about a purchase you regretted. What were you really buying?",
		"If you lost half your income tomorrow, what would actually change?",
		"Name one expense that buys you status, not utility.",
		"What money habit did you inherit from your parents?",
		"Describe a time you said no to spending and felt better for it.",
		"What would you do for work if pay were equal everywhere?",
		"Write down your three largest recurring costs. Which serves you least?",
		"When did you last feel envy about someone's wealth? Unpack it.",
		"What is the cheapest thing that reliably makes you happy?",
		"If your savings spoke, what would they say about your priorities?",
		"Write about a financial fear you have never said out loud.",
		"What skill could you build this month that money can't buy?",
		"Describe the richest person you know who isn't wealthy.",
		"What would you stop doing if nobody paid you for it?",
		"Name a thing you own that owns you back.",
		"How much of today was spent earning versus living?",
		"Write the ad copy for the last thing you impulse-bought. Be honest.",
		"What debt, financial or otherwise, weighs on you most?",
		"If you had to give away 10% of your income, where would it go?",
		"What did money mean in your house growing up?",
		"Describe a day that cost nothing and was still good.",
		"What are you saving for, really?",
		"Which of your possessions would you grab in a fire? Why so few?",
		"Write about the last time generosity felt easy.",
		"What part of your lifestyle exists to impress people you don't like?",
		"If work stopped defining you, what would?",
		"Name one money decision you can automate so it stops costing attention.",
		"What would your 80-year-old self thank you for buying? For skipping?",
		"Write your own definition of wealth. One paragraph, no numbers.",
	},
	models.PillarEgo: {
		"Write about the last time you were wrong and admitted it late.",
		"Whose approval are you still chasing, and why theirs?",
		"Describe yourself in three sentences a stranger would find neutral.",
		"What compliment do you fish for most often?",
		"Write about a time your reputation mattered more than your character.",
		"What criticism stung recently? Find the true part of it.",
		"Name something you pretend to understand. Why keep pretending?",
		"When did you last change your mind in public?",
		"Write about someone you resent. What do they have that you want?",
		"What role do you play in groups? Who would you be without it?",
		"Describe a failure you still narrate as bad luck.",
		"What would people say about you if you left the room?",
		"Write about the last argument you needed to win. What did winning cost?",
		"What part of your self-image is overdue for retirement?",
		"When are you most tempted to exaggerate?",
		"Name a talent you hide so nobody can judge it.",
		"Write a sincere apology you never sent. You don't have to send it.",
		"What praise makes you uncomfortable? That's the interesting kind.",
		"Describe a moment you felt invisible. What did it free you to do?",
		"Which of your opinions is really your tribe's opinion?",
		"Write about a time you helped someone with no chance of credit.",
		"What does your anger usually defend?",
		"If your flaws were a job posting, what would it say?",
		"When did you last ask a question you feared made you look dumb?",
		"Write about the gap between who you are online and off.",
		"What achievement do you lean on too hard in conversation?",
		"Describe the most useful piece of criticism you ever received.",
		"What would humility look like in your next disagreement?",
		"Name one thing you do only when watched. Do it unwatched this week.",
		"Write your own eulogy in three sentences. What's missing from your days?",
	},
	models.PillarRelationships: {
		"Who did you last truly listen to, without rehearsing your reply?",
		"Write about a friendship that faded. What did you stop tending?",
		"What do you need from others that you rarely ask for directly?",
		"Describe the last time you felt fully understood.",
		"Name a grudge you're carrying. What does it cost you per day?",
		"Who in your life gets your leftovers instead of your attention?",
		"Write a thank-you note to someone who will never read it.",
		"What conflict are you avoiding right now? Write the first sentence of it.",
		"When did you last let someone help you?",
		"Describe a relationship where you perform instead of participate.",
		"What did your parents teach you about conflict, by example?",
		"Who brings out a version of you that you like? What do they do?",
		"Write about a boundary you failed to hold this month.",
		"What small betrayal of yours still needs repair?",
		"Name the person you most owe a difficult conversation.",
		"When are you hardest to love? Be specific.",
		"Write about someone you've outgrown and haven't admitted it.",
		"What do you bring to a room? What do you take from it?",
		"Describe the last time you chose being right over being close.",
		"Who checks on you? Who do you check on?",
		"Write about a stranger who was kind to you. What did it change?",
		"What topic do you and someone you love silently agree never to touch?",
		"When did you last say 'I was wrong' to someone you love?",
		"Describe your ideal evening with people. Now, when did you last have it?",
		"What promise to someone else is overdue?",
		"Who taught you the most about loyalty? How?",
		"Write about the loneliest you've been while surrounded by people.",
		"What would your closest friend say you need to hear?",
		"Name one person to reconnect with this week. What's the first message?",
		"Write about the love you find easiest to give and hardest to receive.",
	},
	models.PillarDiscipline: {
		"What did you do today that your future self will thank you for?",
		"Write about the habit you keep restarting. What kills it each time?",
		"What is the first thing you reach for when you wake? Why?",
		"Describe your ideal ordinary Tuesday, hour by hour.",
		"What do you do when nobody would know if you skipped it?",
		"Name the excuse you use most. Write it down where you can see it.",
		"When did you last finish something difficult? Replay the final hour.",
		"What are you tolerating that a stricter you would fix this week?",
		"Write about a rule you set for yourself and actually kept.",
		"Which hour of your day leaks the most time?",
		"What would training look like if your life were a sport?",
		"Describe the last temptation you beat. How, exactly?",
		"What do you practice daily without calling it practice?",
		"Name a comfort you could give up for a week. What would it teach?",
		"When does your willpower fail: morning, evening, or alone?",
		"Write about someone whose consistency you admire. Steal one habit.",
		"What task have you delayed so long it grew teeth?",
		"Describe how you talk to yourself after you slip. Would you talk to a friend that way?",
		"What's the smallest version of the habit you keep failing at?",
		"When did you last do hard things early instead of late?",
		"Write about the difference between rest and escape in your week.",
		"What commitment would you keep if you told someone about it today?",
		"Name the distraction you defend most fiercely.",
		"What does your evidence say you value, ignoring what you claim?",
		"Describe a day you were proud of. What was the first domino?",
		"What would you attempt if boredom didn't scare you?",
		"Write your rules for the next seven days. Three, at most.",
		"When you say 'later', when is that, usually?",
		"What strength did this month's hardest day reveal?",
		"Write about who you are on day 30 of anything. How do you get them to day 1?",
	},
}

// ForDay returns the guided prompt for a 1-indexed day of a pillar's track.
// ok is false for unknown pillars or out-of-range days.
func ForDay(pillar models.Pillar, day int) (string, bool) {
	track, ok := tracks[pillar]
	if !ok || day < 1 || day > len(track) {
		return "", false
	}
	return track[day-1], true
}
