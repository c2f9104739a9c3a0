package feedback

func skinTones(base string) []string {
	return []string{base + "🏻", base + "🏼", base + "🏽", base + "🏾", base + "🏿"}
}

func with(aliases []string, more ...string) []string {
	return append(aliases, more...)
}

// builtinEmoji is the default reaction table. Keep scores at 0.5 steps.
var builtinEmoji = []EmojiDefinition{
	// love
	{Emoji: "❤️", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreExtreme, Name: "red heart", Aliases: []string{":heart:"}},
	{Emoji: "😍", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreExtreme, Name: "smiling face with heart-eyes", Aliases: []string{":heart_eyes:"}},
	{Emoji: "🥰", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreExtreme, Name: "smiling face with hearts", Aliases: []string{":smiling_face_with_3_hearts:"}},
	{Emoji: "😘", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "face blowing a kiss", Aliases: []string{":kissing_heart:"}},
	{Emoji: "😻", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "smiling cat with heart-eyes"},
	{Emoji: "💕", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "two hearts"},
	{Emoji: "💖", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "sparkling heart"},
	{Emoji: "💗", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "growing heart"},
	{Emoji: "💙", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "blue heart"},
	{Emoji: "💚", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "green heart"},
	{Emoji: "💛", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "yellow heart"},
	{Emoji: "💜", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "purple heart"},
	{Emoji: "🧡", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStrong, Name: "orange heart"},
	{Emoji: "🤍", Sentiment: SentimentPositive, Category: CategoryLove, Score: ScoreStandard, Name: "white heart"},

	// laughter
	{Emoji: "😂", Sentiment: SentimentPositive, Category: CategoryLaughter, Score: ScoreStrong, Name: "face with tears of joy", Aliases: []string{":joy:"}},
	{Emoji: "🤣", Sentiment: SentimentPositive, Category: CategoryLaughter, Score: ScoreStrong, Name: "rolling on the floor laughing", Aliases: []string{":rofl:"}},
	{Emoji: "😆", Sentiment: SentimentPositive, Category: CategoryLaughter, Score: ScoreStandard, Name: "grinning squinting face", Aliases: []string{":laughing:"}},
	{Emoji: "😄", Sentiment: SentimentPositive, Category: CategoryLaughter, Score: ScoreStandard, Name: "grinning face with smiling eyes", Aliases: []string{":smile:"}},
	{Emoji: "😁", Sentiment: SentimentPositive, Category: CategoryLaughter, Score: ScoreStandard, Name: "beaming face with smiling eyes", Aliases: []string{":grin:"}},
	{Emoji: "😹", Sentiment: SentimentPositive, Category: CategoryLaughter, Score: ScoreStandard, Name: "cat with tears of joy"},

	// celebration
	{Emoji: "🎉", Sentiment: SentimentPositive, Category: CategoryCelebration, Score: ScoreStrong, Name: "party popper", Aliases: []string{":tada:"}},
	{Emoji: "🥳", Sentiment: SentimentPositive, Category: CategoryCelebration, Score: ScoreStrong, Name: "partying face"},
	{Emoji: "🎊", Sentiment: SentimentPositive, Category: CategoryCelebration, Score: ScoreStandard, Name: "confetti ball"},
	{Emoji: "🍾", Sentiment: SentimentPositive, Category: CategoryCelebration, Score: ScoreStandard, Name: "bottle with popping cork"},

	// approval
	{Emoji: "👍", Sentiment: SentimentPositive, Category: CategoryApproval, Score: ScoreStandard, Name: "thumbs up", Aliases: with(skinTones("👍"), ":thumbsup:", ":+1:")},
	{Emoji: "👌", Sentiment: SentimentPositive, Category: CategoryApproval, Score: ScoreStandard, Name: "OK hand", Aliases: with(skinTones("👌"), ":ok_hand:")},
	{Emoji: "👏", Sentiment: SentimentPositive, Category: CategoryApproval, Score: ScoreStandard, Name: "clapping hands", Aliases: with(skinTones("👏"), ":clap:")},
	{Emoji: "💯", Sentiment: SentimentPositive, Category: CategoryApproval, Score: ScoreStrong, Name: "hundred points", Aliases: []string{":100:"}},
	{Emoji: "✅", Sentiment: SentimentPositive, Category: CategoryApproval, Score: ScoreStandard, Name: "check mark button", Aliases: []string{":white_check_mark:"}},
	{Emoji: "✔️", Sentiment: SentimentPositive, Category: CategoryApproval, Score: ScoreMild, Name: "check mark"},
	{Emoji: "⭐", Sentiment: SentimentPositive, Category: CategoryApproval, Score: ScoreStandard, Name: "star", Aliases: []string{":star:"}},
	{Emoji: "😊", Sentiment: SentimentPositive, Category: CategoryApproval, Score: ScoreStandard, Name: "smiling face with smiling eyes", Aliases: []string{":blush:"}},
	{Emoji: "🙂", Sentiment: SentimentPositive, Category: CategoryApproval, Score: ScoreMild, Name: "slightly smiling face"},

	// amazement
	{Emoji: "🤩", Sentiment: SentimentPositive, Category: CategoryAmazement, Score: ScoreStrong, Name: "star-struck"},
	{Emoji: "🔥", Sentiment: SentimentPositive, Category: CategoryAmazement, Score: ScoreStrong, Name: "fire", Aliases: []string{":fire:"}},
	{Emoji: "✨", Sentiment: SentimentPositive, Category: CategoryAmazement, Score: ScoreStandard, Name: "sparkles", Aliases: []string{":sparkles:"}},
	{Emoji: "🌟", Sentiment: SentimentPositive, Category: CategoryAmazement, Score: ScoreStandard, Name: "glowing star"},
	{Emoji: "🤯", Sentiment: SentimentPositive, Category: CategoryAmazement, Score: ScoreStandard, Name: "exploding head"},

	// support
	{Emoji: "🤗", Sentiment: SentimentPositive, Category: CategorySupport, Score: ScoreStandard, Name: "hugging face", Aliases: []string{":hugging:"}},
	{Emoji: "🫂", Sentiment: SentimentPositive, Category: CategorySupport, Score: ScoreStrong, Name: "people hugging"},
	{Emoji: "💪", Sentiment: SentimentPositive, Category: CategorySupport, Score: ScoreStandard, Name: "flexed biceps", Aliases: with(skinTones("💪"), ":muscle:")},
	{Emoji: "🙌", Sentiment: SentimentPositive, Category: CategorySupport, Score: ScoreStandard, Name: "raising hands", Aliases: skinTones("🙌")},

	// gratitude
	{Emoji: "🙏", Sentiment: SentimentPositive, Category: CategoryGratitude, Score: ScoreStandard, Name: "folded hands", Aliases: with(skinTones("🙏"), ":pray:")},
	{Emoji: "💐", Sentiment: SentimentPositive, Category: CategoryGratitude, Score: ScoreStandard, Name: "bouquet"},

	// cool
	{Emoji: "😎", Sentiment: SentimentPositive, Category: CategoryCool, Score: ScoreStandard, Name: "smiling face with sunglasses", Aliases: []string{":sunglasses:"}},
	{Emoji: "🤘", Sentiment: SentimentPositive, Category: CategoryCool, Score: ScoreStandard, Name: "sign of the horns", Aliases: skinTones("🤘")},
	{Emoji: "🆒", Sentiment: SentimentPositive, Category: CategoryCool, Score: ScoreMild, Name: "COOL button"},

	// disapproval
	{Emoji: "👎", Sentiment: SentimentNegative, Category: CategoryDisapproval, Score: -ScoreStandard, Name: "thumbs down", Aliases: with(skinTones("👎"), ":thumbsdown:", ":-1:")},
	{Emoji: "❌", Sentiment: SentimentNegative, Category: CategoryDisapproval, Score: -ScoreStandard, Name: "cross mark", Aliases: []string{":x:"}},
	{Emoji: "🚫", Sentiment: SentimentNegative, Category: CategoryDisapproval, Score: -ScoreStandard, Name: "prohibited"},
	{Emoji: "🙄", Sentiment: SentimentNegative, Category: CategoryDisapproval, Score: -ScoreStandard, Name: "face with rolling eyes", Aliases: []string{":rolling_eyes:"}},
	{Emoji: "😒", Sentiment: SentimentNegative, Category: CategoryDisapproval, Score: -ScoreStandard, Name: "unamused face", Aliases: []string{":unamused:"}},
	{Emoji: "🖕", Sentiment: SentimentNegative, Category: CategoryDisapproval, Score: -ScoreExtreme, Name: "middle finger", Aliases: skinTones("🖕")},

	// sadness
	{Emoji: "😢", Sentiment: SentimentNegative, Category: CategorySadness, Score: -ScoreStandard, Name: "crying face", Aliases: []string{":cry:"}},
	{Emoji: "😭", Sentiment: SentimentNegative, Category: CategorySadness, Score: -ScoreStrong, Name: "loudly crying face", Aliases: []string{":sob:"}},
	{Emoji: "💔", Sentiment: SentimentNegative, Category: CategorySadness, Score: -ScoreStrong, Name: "broken heart", Aliases: []string{":broken_heart:"}},
	{Emoji: "😿", Sentiment: SentimentNegative, Category: CategorySadness, Score: -ScoreStandard, Name: "crying cat"},
	{Emoji: "☹️", Sentiment: SentimentNegative, Category: CategorySadness, Score: -ScoreStandard, Name: "frowning face"},

	// anger
	{Emoji: "😡", Sentiment: SentimentNegative, Category: CategoryAnger, Score: -ScoreExtreme, Name: "enraged face", Aliases: []string{":rage:"}},
	{Emoji: "🤬", Sentiment: SentimentNegative, Category: CategoryAnger, Score: -ScoreExtreme, Name: "face with symbols on mouth"},
	{Emoji: "😠", Sentiment: SentimentNegative, Category: CategoryAnger, Score: -ScoreStrong, Name: "angry face", Aliases: []string{":angry:"}},
	{Emoji: "💢", Sentiment: SentimentNegative, Category: CategoryAnger, Score: -ScoreStandard, Name: "anger symbol"},

	// disgust
	{Emoji: "🤮", Sentiment: SentimentNegative, Category: CategoryDisgust, Score: -ScoreExtreme, Name: "face vomiting"},
	{Emoji: "🤢", Sentiment: SentimentNegative, Category: CategoryDisgust, Score: -ScoreStrong, Name: "nauseated face"},
	{Emoji: "💩", Sentiment: SentimentNegative, Category: CategoryDisgust, Score: -ScoreStandard, Name: "pile of poo", Aliases: []string{":poop:"}},

	// disappointment
	{Emoji: "😞", Sentiment: SentimentNegative, Category: CategoryDisappointment, Score: -ScoreStandard, Name: "disappointed face", Aliases: []string{":disappointed:"}},
	{Emoji: "😔", Sentiment: SentimentNegative, Category: CategoryDisappointment, Score: -ScoreStandard, Name: "pensive face", Aliases: []string{":pensive:"}},
	{Emoji: "😩", Sentiment: SentimentNegative, Category: CategoryDisappointment, Score: -ScoreStandard, Name: "weary face"},
	{Emoji: "🤦", Sentiment: SentimentNegative, Category: CategoryDisappointment, Score: -ScoreStandard, Name: "person facepalming", Aliases: []string{"🤦‍♂️", "🤦‍♀️", ":facepalm:"}},
	{Emoji: "😕", Sentiment: SentimentNegative, Category: CategoryDisappointment, Score: -ScoreMild, Name: "confused face"},
	{Emoji: "😑", Sentiment: SentimentNegative, Category: CategoryDisappointment, Score: -ScoreMild, Name: "expressionless face"},

	// thinking
	{Emoji: "🤔", Sentiment: SentimentNeutral, Category: CategoryThinking, Score: 0, Name: "thinking face", Aliases: []string{":thinking:"}},
	{Emoji: "🧐", Sentiment: SentimentNeutral, Category: CategoryThinking, Score: 0, Name: "face with monocle"},
	{Emoji: "🤨", Sentiment: SentimentNeutral, Category: CategoryThinking, Score: 0, Name: "face with raised eyebrow"},

	// surprise
	{Emoji: "😮", Sentiment: SentimentNeutral, Category: CategorySurprise, Score: 0, Name: "face with open mouth", Aliases: []string{":open_mouth:"}},
	{Emoji: "😲", Sentiment: SentimentNeutral, Category: CategorySurprise, Score: 0, Name: "astonished face"},
	{Emoji: "😯", Sentiment: SentimentNeutral, Category: CategorySurprise, Score: 0, Name: "hushed face"},
	{Emoji: "👀", Sentiment: SentimentNeutral, Category: CategorySurprise, Score: 0, Name: "eyes", Aliases: []string{":eyes:"}},

	// informational
	{Emoji: "ℹ️", Sentiment: SentimentNeutral, Category: CategoryInformational, Score: 0, Name: "information"},
	{Emoji: "📌", Sentiment: SentimentNeutral, Category: CategoryInformational, Score: 0, Name: "pushpin"},
	{Emoji: "📝", Sentiment: SentimentNeutral, Category: CategoryInformational, Score: 0, Name: "memo"},
	{Emoji: "❓", Sentiment: SentimentNeutral, Category: CategoryInformational, Score: 0, Name: "question mark"},
	{Emoji: "❗", Sentiment: SentimentNeutral, Category: CategoryInformational, Score: 0, Name: "exclamation mark"},
	{Emoji: "🔔", Sentiment: SentimentNeutral, Category: CategoryInformational, Score: 0, Name: "bell"},

	// misc
	{Emoji: "🤷", Sentiment: SentimentNeutral, Category: CategoryMisc, Score: 0, Name: "person shrugging", Aliases: []string{"🤷‍♂️", "🤷‍♀️", ":shrug:"}},
	{Emoji: "😐", Sentiment: SentimentNeutral, Category: CategoryMisc, Score: 0, Name: "neutral face", Aliases: []string{":neutral_face:"}},
	{Emoji: "😶", Sentiment: SentimentNeutral, Category: CategoryMisc, Score: 0, Name: "face without mouth"},
	{Emoji: "🫠", Sentiment: SentimentNeutral, Category: CategoryMisc, Score: 0, Name: "melting face"},
}
