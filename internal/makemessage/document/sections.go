package document

// commentNote は言語ファイルの注記
const commentNote = `# All lines, except those inside [BEIGN MESSAGE] and [END MESSAGE], can be commented by adding the sharp '#' mark at the first of the line.

`

// creditsSection はエンディングで表示するクレジット
const creditsSection = `# This section contains the information that will be displayed when a user finishes the game.
# Only the keys listed here are valid. Other keys will be ignored.
[BEGIN CREDITS]
# Place the translated text of 'Classical special build' here in no more than 24 half-wide characters.
1= Classical special build
# Place the translated porting information template at the following two lines. Be aware that each replaced line will be truncated into at most 40 half-wide characters.
6= ${platform} port by ${author}, ${year}.
7=
# Place the translated GNU licensing information at the following three lines. Be aware that each line will be truncated into at most 40 half-wide characters.
8=   This is a free software and it is
9=   published under GNU General Public
10=    License v3.
# Place the translated text at the following line. Be aware that each line will be truncated into at most 40 half-wide characters.
11=    ...Press Enter to continue
[END CREDITS]

`

// layoutSection は装備画面・ステータス画面の座標
const layoutSection = `# Each line controls one position value.
# For each line, the format is 'idx=x,y,flag', while the flag is optional
# If bit 0 of flag is 1, then use 8x8 font; and while bit 1 of flag is 1, then disable shadow
# Lines from 1 to 26 are for equipping screen, lines from 27 to 80 are for status screen.
[BEGIN LAYOUT]
# 1 is the position of image box in equipping screen
1=8,8
# 2 is the position of role list box in equipping screen
2=2,95
# 3 is the position of current equipment's name in equipping screen
3=5,70
# 4 is the position of current equipment's amount in equipping screen
4=51,57
# 5 .. 10 are the positions of words 600 ... 605 in equipping screen
5=92,11
6=92,33
7=92,55
8=92,77
9=92,99
10=92,121
# 11 .. 16 are the positions of equipped equipments in equipping screen
11=130,11
12=130,33
13=130,55
14=130,77
15=130,99
16=130,121
# 17 .. 21 are the positions of words 51 ... 55 in equipping screen
17=226,10
18=226,32
19=226,54
20=226,76
21=226,98
# 22 .. 26 are the positions of status values in equipping screen
22=260,14
23=260,36
24=260,58
25=260,80
26=260,102
# 27 is the position of role name in status screen
27=110,8
# 28 is the position of role image in status screen
28=110,30
# 29 is the position of EXP label in status screen
29=6,6
# 30 is the position of LEVEL label in status screen
30=6,32
# 31 is the position of HP label in status screen
31=6,54
# 32 is the position of MP label in status screen
32=6,76
# 33 .. 37 are the positions of words 51 ... 55 in equipping screen
33=6,98
34=6,118
35=6,138
36=6,158
37=6,178
# 38 is the position of current EXP in status screen
38=58,6
# 39 is the position of required EXP to level up in status screen
39=58,15
# 40 is the position of slash between EXPs in status screen, if set to (0,0), then do not show the slash
40=0,0
# 41 is the position of LEVEL in status screen
41=54,35
# 42 is the position of current HP in status screen
42=42,56
# 43 is the position of max HP in status screen
43=63,61
# 44 is the position of slash between cur & max HPs in status screen, if set to (0,0), then do not show the slash
44=65,58
# 45 is the position of current MP in status screen
45=42,78
# 46 is the position of max MP in status screen
46=63,83
# 47 is the position of slash between cur & max MPs in status screen, if set to (0,0), then do not show the slash
47=65,80
# 48 .. 52 are the positions of status values in status screen
48=42,102
49=42,122
50=42,142
51=42,162
52=42,182
# 53 .. 58 are the positions of image boxes for equipped equipments in status screen
53=189,-1
54=247,39
55=251,101
56=201,133
57=141,141
58=81,125
# 59 .. 64 are the positions of names for equipped equipments in status screen
59=195,38
60=253,78
61=257,140
62=207,172
63=147,180
64=87,164
# 65 .. 80 are the positions of poison names in status screen, note that currently there are no more than 8 poisons can be simulatenously displayed
65=185,58
66=185,76
67=185,94
68=185,112
69=185,130
70=185,148
71=185,166
72=185,184
73=185,184
74=185,184
75=185,184
76=185,184
77=185,184
78=185,184
79=185,184
80=185,184
# 81 .. 82 are extra description lines in the item (81) & magic (82) menu, where the first value specifies the lines and the second value should be zero.
81=2,0
82=1,0
# 83 .. 87 customize the layout of MP information and description message in the magic menu.
# 83 customizes the width of the MP column with its first value. The default value is 5. Use 3 for a narrower one. The second value should be zero.
83=5,0
# 84 .. 86 are the coordinates of the slash mark, required MP and current player MP.
84=45,14
85=15,14
86=50,14
# 87 customizes the X coordinate of the description message with its first value and the second value should be zero.
87=102,0
[END LAYOUT]

`
